// Package repository loads the sample network datasets from CSV files
// at process startup. The resulting store is never mutated afterwards,
// so concurrent requests read it without locking.
package repository

import (
	"fmt"
	"path/filepath"

	"github.com/netrank-labs/netrank-backend/internal/networks/domain"
)

// datasetSpec describes one curated sample network shipped in the data
// directory.
type datasetSpec struct {
	networkType string
	name        string
	description string
	csvFile     string
}

var datasets = []datasetSpec{
	{
		networkType: "citation",
		name:        "Academic Citation Network",
		description: "Research papers citing each other",
		csvFile:     "citation_network.csv",
	},
	{
		networkType: "social",
		name:        "Social Mention Network",
		description: "Users mentioning and resharing each other",
		csvFile:     "social_network.csv",
	},
}

// Store holds the loaded sample networks keyed by type.
type Store struct {
	networks map[string]*domain.Network
	order    []string
}

// NewStore loads every curated dataset from dataDir. Loading happens
// once; any missing or malformed file fails startup.
func NewStore(dataDir string) (*Store, error) {
	s := &Store{networks: make(map[string]*domain.Network, len(datasets))}

	for _, spec := range datasets {
		path := filepath.Join(dataDir, spec.csvFile)
		nodes, edges, err := LoadEdgesCSV(path)
		if err != nil {
			return nil, fmt.Errorf("load network %q: %w", spec.networkType, err)
		}
		s.networks[spec.networkType] = &domain.Network{
			Type:        spec.networkType,
			Name:        spec.name,
			Description: spec.description,
			Nodes:       nodes,
			Edges:       edges,
			CSVFile:     spec.csvFile,
		}
		s.order = append(s.order, spec.networkType)
	}

	return s, nil
}

// Get resolves a network by type.
func (s *Store) Get(networkType string) (*domain.Network, error) {
	n, ok := s.networks[networkType]
	if !ok {
		return nil, domain.ErrNetworkNotFound
	}
	return n, nil
}

// List returns all loaded networks in load order.
func (s *Store) List() []*domain.Network {
	out := make([]*domain.Network, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.networks[t])
	}
	return out
}
