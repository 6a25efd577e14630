package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const summaryLinkSeparator = " | "

// SummaryReport accumulates rendered viewer links grouped by benchmark
// and, within a benchmark, by group label. Insertion order is preserved
// at both levels: benchmarks and groups appear in the rendered report in
// first-seen order, never sorted. The report is owned by a single
// publishing run and rendered exactly once.
type SummaryReport struct {
	benchmarks []string
	sections   map[string]*benchmarkSection
}

type benchmarkSection struct {
	groups []string
	links  map[string][]string
}

func NewSummaryReport() *SummaryReport {
	return &SummaryReport{sections: map[string]*benchmarkSection{}}
}

// Add appends a rendered link to a benchmark's group, creating the
// benchmark section or group on first sight.
func (r *SummaryReport) Add(benchmark, group, link string) {
	section, ok := r.sections[benchmark]
	if !ok {
		section = &benchmarkSection{links: map[string][]string{}}
		r.sections[benchmark] = section
		r.benchmarks = append(r.benchmarks, benchmark)
	}

	if _, ok := section.links[group]; !ok {
		section.groups = append(section.groups, group)
	}
	section.links[group] = append(section.links[group], link)
}

// Len returns the number of accumulated links.
func (r *SummaryReport) Len() int {
	count := 0
	for _, section := range r.sections {
		for _, links := range section.links {
			count += len(links)
		}
	}
	return count
}

// Render writes the report as markdown: one collapsible section per
// benchmark, one list item per group with the group's links joined by a
// separator. Presentation order equals accumulation order.
func (r *SummaryReport) Render(w io.Writer) error {
	buf := &strings.Builder{}

	for _, benchmark := range r.benchmarks {
		section := r.sections[benchmark]

		fmt.Fprintf(buf, "<details>\n<summary>%s</summary>\n\n", benchmark)
		for _, group := range section.groups {
			fmt.Fprintf(buf, "- %s: %s\n", group, strings.Join(section.links[group], summaryLinkSeparator))
		}
		buf.WriteString("\n</details>\n")
	}

	_, err := io.WriteString(w, buf.String())
	return errors.Wrap(err, "problem writing summary report")
}
