package capture

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry describes one captured frame.
type ManifestEntry struct {
	Frame      int     `json:"frame"`
	Running    bool    `json:"running"`
	Increasing bool    `json:"increasing"`
	BladeAngle float64 `json:"blade_angle"`
	BodyAngle  float64 `json:"body_angle"`
	Image      string  `json:"image"`
}

// WriteManifest writes the successful results as manifest.json at path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:      r.Index,
			Running:    r.State.Running,
			Increasing: r.State.Increasing,
			BladeAngle: r.State.BladeAngle,
			BodyAngle:  r.State.BodyAngle,
			Image:      r.Path,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("capture: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("capture: manifest: %w", err)
	}
	return nil
}
