package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress is the run record stored on disk.
type SavedProgress struct {
	Level      int `json:"level"`      // highest level reached, 0-based
	Rescued    int `json:"rescued"`    // goslings brought home on the last clear
	BestFrames int `json:"bestFrames"` // fastest clear of that level, in frames
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. A failure leaves persistence
// disabled; the game plays on without saving.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gaggle",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress returns the saved record, or nil when there is none.
func LoadProgress() (*SavedProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var p SavedProgress
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &p, nil
}

// SaveProgress writes the record, keeping the best frame count when the
// stored one is better for the same level.
func SaveProgress(p *SavedProgress) {
	if gdataManager == nil {
		return
	}

	if old, err := LoadProgress(); err == nil && old != nil {
		if old.Level == p.Level && old.BestFrames > 0 && old.BestFrames < p.BestFrames {
			p.BestFrames = old.BestFrames
		}
		if old.Level > p.Level {
			p.Level = old.Level
		}
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
