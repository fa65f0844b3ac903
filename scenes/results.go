package scenes

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/automoto/shmup/combat"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/config/keys"
	"github.com/automoto/shmup/systems"
	"github.com/automoto/shmup/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultsScene shows how the match went and the stored records.
type ResultsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	resultsUI    *ui.ResultsUI
	result       systems.MatchResult
	levelPath    string
	once         sync.Once
	playAgain    bool
	primed       bool // keys held over from the battle are ignored for one frame
}

func NewResultsScene(sc SceneChanger, result systems.MatchResult, levelPath string) *ResultsScene {
	return &ResultsScene{sceneChanger: sc, result: result, levelPath: levelPath}
}

func (rs *ResultsScene) Update() {
	rs.once.Do(rs.configure)

	rs.ecs.Update()
	rs.resultsUI.Update()

	input := systems.GetOrCreateInput(rs.ecs)
	if !rs.primed {
		rs.primed = true
		return
	}
	if input.Pressed(keys.ActionMenuSelect) {
		rs.playAgain = true
	}
	if input.Pressed(keys.ActionMenuBack) {
		os.Exit(0)
	}

	if rs.playAgain {
		rs.sceneChanger.ChangeScene(NewBattleScene(rs.sceneChanger, rs.levelPath))
	}
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if rs.resultsUI == nil {
		return
	}
	rs.resultsUI.UI.Draw(screen)
}

func (rs *ResultsScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())
	rs.ecs.AddSystem(systems.UpdateInput)

	records, err := systems.LoadRecords()
	if err != nil {
		records = systems.MatchRecords{}
	}

	rs.resultsUI = ui.NewResultsUI(
		summarize(rs.result, records),
		func() { rs.playAgain = true },
		func() { os.Exit(0) },
	)
}

// summarize turns a result and the stored records into results screen rows.
func summarize(res systems.MatchResult, records systems.MatchRecords) ui.ResultsSummary {
	summary := ui.ResultsSummary{
		Title: cfg.Results.LostTitle,
		Won:   res.Status == combat.Won,
		Match: []ui.ResultRow{
			{Label: "Time", Value: formatSeconds(res.Elapsed)},
			{Label: "Waves", Value: fmt.Sprint(res.Waves)},
			{Label: "Kills", Value: fmt.Sprint(res.Kills)},
			{Label: "Shots fired", Value: fmt.Sprint(res.ShotsFired)},
			{Label: "Damage taken", Value: fmt.Sprint(res.DamageTaken)},
			{Label: "Seed", Value: fmt.Sprint(res.Seed)},
		},
	}
	if summary.Won {
		summary.Title = cfg.Results.WonTitle
	}

	if records.Matches == 0 {
		return summary
	}
	best := "-"
	if records.BestClear > 0 {
		best = formatSeconds(records.BestClear)
	}
	summary.Records = []ui.ResultRow{
		{Label: "Matches", Value: fmt.Sprint(records.Matches)},
		{Label: "Wins / Losses", Value: fmt.Sprintf("%d / %d", records.Wins, records.Losses)},
		{Label: "Best clear", Value: best},
		{Label: "Most kills", Value: fmt.Sprint(records.MostKills)},
	}
	return summary
}

func formatSeconds(s float64) string {
	total := int(s)
	return fmt.Sprintf("%d:%02d.%d", total/60, total%60, int((s-float64(total))*10))
}
