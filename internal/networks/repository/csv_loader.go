package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	analysis "github.com/netrank-labs/netrank-backend/internal/linkanalysis/domain"
)

// LoadEdgesCSV reads a `source,target` edge list. The header row is
// required and matched case-insensitively; values are whitespace
// trimmed; extra columns are tolerated. The node list is the sorted set
// of all endpoints seen in the file.
func LoadEdgesCSV(path string) ([]string, []analysis.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	srcCol, dstCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "source":
			srcCol = i
		case "target":
			dstCol = i
		}
	}
	if srcCol < 0 || dstCol < 0 {
		return nil, nil, fmt.Errorf("%s: header must contain source and target columns", path)
	}

	var edges []analysis.Edge
	nodeSet := map[string]struct{}{}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		if srcCol >= len(record) || dstCol >= len(record) {
			continue
		}
		source := strings.TrimSpace(record[srcCol])
		target := strings.TrimSpace(record[dstCol])
		if source == "" || target == "" {
			continue
		}
		edges = append(edges, analysis.Edge{Source: source, Target: target})
		nodeSet[source] = struct{}{}
		nodeSet[target] = struct{}{}
	}

	nodes := make([]string, 0, len(nodeSet))
	for node := range nodeSet {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	return nodes, edges, nil
}
