package pkgstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
)

const lastPlanFile = "last_plan.json"

// Plan is a generated itinerary together with the display toggles and any
// manual adjustments made to it.
type Plan struct {
	Options itinerary.Options      `json:"options"`
	View    itinerary.ViewOptions  `json:"view"`
	Result  *itinerary.Result      `json:"result"`
	Manual  []itinerary.ManualStay `json:"manual,omitempty"`
	SavedAt time.Time              `json:"savedAt"`
}

// Projection returns the counted view of the plan. Manual stays already
// hold counted nights, so only weekend tagging is applied to them.
func (p *Plan) Projection() itinerary.View {
	if len(p.Manual) > 0 {
		return itinerary.Project(itinerary.Stays(p.Manual), itinerary.ViewOptions{MarkWeekend: p.View.MarkWeekend})
	}
	if p.Result == nil {
		return itinerary.Project(nil, p.View)
	}
	return itinerary.Project(p.Result.Stays, p.View)
}

// LastPlanPath returns the location of the last saved plan in dataDir.
func LastPlanPath(dataDir string) string {
	return filepath.Join(dataDir, lastPlanFile)
}

// WriteLastPlan stores p as the last plan, stamping SavedAt.
func WriteLastPlan(dataDir string, p *Plan, now time.Time) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	p.SavedAt = now.UTC()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(LastPlanPath(dataDir), data, 0644)
}

// ReadLastPlan loads the last saved plan. It returns nil with no error when
// no plan has been saved yet.
func ReadLastPlan(dataDir string) (*Plan, error) {
	data, err := os.ReadFile(LastPlanPath(dataDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", lastPlanFile, err)
	}
	return &p, nil
}
