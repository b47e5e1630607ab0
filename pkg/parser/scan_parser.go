package parser

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/util"
)

// scan lines look like:
//
//	Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
//	Valve HH has flow rate=22; tunnel leads to valve GG
var scanLineRe = regexp.MustCompile(
	`^Valve ([A-Z]{2}) has flow rate=(\d+); tunnels? leads? to valves? ([A-Z]{2}(?:, [A-Z]{2})*)$`)

type ScanParser struct {
}

func NewScanParser() *ScanParser {
	return &ScanParser{}
}

// Parse reads one valve record per line. blank lines are skipped, anything
// else that does not match the scan format is a fatal parse error.
func (sp *ScanParser) Parse(r io.Reader) ([]datastructure.Valve, error) {
	br := bufio.NewReader(r)

	valves := make([]datastructure.Valve, 0)
	for {
		line, err := util.ReadLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		valve, err := sp.parseLine(line)
		if err != nil {
			return nil, err
		}
		valves = append(valves, valve)
	}
	return valves, nil
}

// ParseFile parses a scan file. files ending in .bz2 are decompressed on the
// fly, same as the engine's graph files.
func (sp *ScanParser) ParseFile(path string) ([]datastructure.Valve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	return sp.Parse(r)
}

func (sp *ScanParser) parseLine(line string) (datastructure.Valve, error) {
	m := scanLineRe.FindStringSubmatch(line)
	if m == nil {
		return datastructure.Valve{}, util.WrapErrorf(nil, util.ErrMalformedScan,
			"cannot parse scan line %q", line)
	}

	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return datastructure.Valve{}, util.WrapErrorf(err, util.ErrMalformedScan,
			"invalid flow rate in scan line %q", line)
	}

	return datastructure.NewValve(m[1], rate, strings.Split(m[3], ", ")), nil
}
