package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/shmup/combat"
	"github.com/quasilyte/gdata"
)

const recordsKey = "records"

// MatchResult summarizes one finished match.
type MatchResult struct {
	Status      combat.Status `json:"status"`
	Elapsed     float64       `json:"elapsed"`
	Kills       int           `json:"kills"`
	ShotsFired  int           `json:"shotsFired"`
	DamageTaken int           `json:"damageTaken"`
	Waves       int           `json:"waves"` // waves released before the match ended
	Seed        uint64        `json:"seed"`
}

// MatchRecords is the data stored on disk across matches.
type MatchRecords struct {
	Matches   int          `json:"matches"`
	Wins      int          `json:"wins"`
	Losses    int          `json:"losses"`
	BestClear float64      `json:"bestClear"` // fastest win in seconds, 0 before the first win
	MostKills int          `json:"mostKills"`
	Last      *MatchResult `json:"last,omitempty"`
}

// Apply folds a finished match into the records.
func (r MatchRecords) Apply(res MatchResult) MatchRecords {
	r.Matches++
	switch res.Status {
	case combat.Won:
		r.Wins++
		if r.BestClear == 0 || res.Elapsed < r.BestClear {
			r.BestClear = res.Elapsed
		}
	case combat.Lost:
		r.Losses++
	}
	r.MostKills = max(r.MostKills, res.Kills)
	r.Last = &res
	return r
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for records storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shmup",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecords loads records from disk. It returns empty records when
// nothing is stored or persistence is unavailable.
func LoadRecords() (MatchRecords, error) {
	var records MatchRecords
	if !gdataInitialized || gdataManager == nil {
		return records, nil
	}

	data, err := gdataManager.LoadItem(recordsKey)
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return records, nil
	}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return MatchRecords{}, err
	}
	return records, nil
}

// SaveRecords saves records to disk
func SaveRecords(r MatchRecords) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordsKey, data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// RecordMatch adds a finished match to the stored records and returns the
// updated records. Storage failures are logged, never fatal.
func RecordMatch(res MatchResult) MatchRecords {
	records, err := LoadRecords()
	if err != nil {
		records = MatchRecords{}
	}
	records = records.Apply(res)
	_ = SaveRecords(records)
	return records
}
