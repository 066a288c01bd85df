package aspak

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nettfg/aspak/internal/atomicfile"
	"github.com/nettfg/aspak/internal/binfile"
)

// Report structures for the optional YAML packing report. Asset ids are
// rendered as 16-digit hex so they match what hex dumps of the bin and
// index files show.
type (
	report struct {
		Assets int         `yaml:"assets"`
		Bins   []reportBin `yaml:"bins"`
	}

	reportBin struct {
		Name    string        `yaml:"name"`
		ID      uint32        `yaml:"id"`
		Bytes   int           `yaml:"bytes"`
		Entries []reportEntry `yaml:"entries"`
	}

	reportEntry struct {
		Path   string `yaml:"path"`
		ID     string `yaml:"id"`
		Offset uint64 `yaml:"offset"`
		Size   uint64 `yaml:"size"`
	}
)

// writeReport emits the packing report. Bin entries align one-to-one
// with each spec's asset list, which is how paths are recovered for a
// format that only stores ids.
func writeReport(path string, specs []binSpec, built []*binfile.Bin) error {
	rep := report{Bins: make([]reportBin, len(specs))}
	for i, spec := range specs {
		entries := built[i].Entries()
		rb := reportBin{
			Name:    spec.name,
			ID:      spec.id,
			Bytes:   built[i].DataSize(),
			Entries: make([]reportEntry, len(entries)),
		}
		for j, e := range entries {
			rb.Entries[j] = reportEntry{
				Path:   spec.assets[j],
				ID:     fmt.Sprintf("%016x", e.ID),
				Offset: e.Offset,
				Size:   e.Size,
			}
		}
		rep.Assets += len(entries)
		rep.Bins[i] = rb
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling packing report: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing packing report: %w", err)
	}
	return nil
}
