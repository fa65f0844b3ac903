package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ResultRow is one label/value line of the results table.
type ResultRow struct {
	Label string
	Value string
}

// ResultsSummary is everything the results screen displays.
type ResultsSummary struct {
	Title   string
	Won     bool
	Match   []ResultRow
	Records []ResultRow
}

type ResultsUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnQuit      func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewResultsUI(summary ResultsSummary, onPlayAgain func(), onQuit func()) *ResultsUI {
	ui := &ResultsUI{
		OnPlayAgain: onPlayAgain,
		OnQuit:      onQuit,
	}
	ui.loadFonts()
	ui.buildUI(summary)
	return ui
}

func (ui *ResultsUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: regular, Size: 11}
}

func (ui *ResultsUI) buildUI(summary ResultsSummary) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleColor := color.RGBA{255, 90, 90, 255}
	if summary.Won {
		titleColor = color.RGBA{120, 255, 120, 255}
	}
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(summary.Title, &ui.titleFace, &widget.LabelColor{
			Idle: titleColor,
		}),
	))

	contentContainer.AddChild(ui.buildTable("THIS RUN", summary.Match))
	if len(summary.Records) > 0 {
		contentContainer.AddChild(ui.buildTable("RECORDS", summary.Records))
	}

	contentContainer.AddChild(ui.buildButtons())
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Enter to play again, Esc to quit", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 170, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// buildTable lays rows out in a two-column grid under a heading.
func (ui *ResultsUI) buildTable(heading string, rows []ResultRow) *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(heading, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	))

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(24, 4),
		)),
	)
	for _, row := range rows {
		grid.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(row.Label, &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		))
		grid.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(row.Value, &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{255, 255, 255, 255},
			}),
		))
	}
	panel.AddChild(grid)

	return panel
}

func (ui *ResultsUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Play again", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlayAgain != nil {
				ui.OnPlayAgain()
			}
		}),
	)
	container.AddChild(playButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

func (ui *ResultsUI) Update() {
	ui.UI.Update()
}
