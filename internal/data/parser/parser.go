// Package parser reads duty-status day logs from JSONL files, one HosLog
// record per line.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// Parser parses day-log files. Parsed files are cached by path; Invalidate
// drops a cached entry when the watcher reports a change.
type Parser struct {
	mu    sync.Mutex
	cache map[string][]model.HosLog
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{
		cache: make(map[string][]model.HosLog),
	}
}

// ParseFile parses the day-log file at the specified path and returns its
// duty-status records. Lines that are not valid records are skipped, not
// fatal: a partially written line during a live update must not take the
// whole day down.
func (p *Parser) ParseFile(filepath string) ([]model.HosLog, error) {
	p.mu.Lock()
	if cached, ok := p.cache[filepath]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Start parsing day log: %s", filepath))

	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var logs []model.HosLog
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var log model.HosLog
		if err := sonic.Unmarshal(line, &log); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", filepath, lineCount, err))
			continue
		}
		logs = append(logs, log)
	}

	if err := scanner.Err(); err != nil {
		util.LogDebug(fmt.Sprintf("Error scanning day log: %s - %v", filepath, err))
		return nil, err
	}

	p.mu.Lock()
	p.cache[filepath] = logs
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Parsed day log %s: %d lines, %d records", filepath, lineCount, len(logs)))
	return logs, nil
}

// Invalidate drops the cached records for a path.
func (p *Parser) Invalidate(filepath string) {
	p.mu.Lock()
	delete(p.cache, filepath)
	p.mu.Unlock()
}
