package spent

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/spent/pkg"
)

// Row is one span line of a rendered report. Filter expressions given to
// [WithFilter] evaluate against its exported fields, e.g.:
//
//	Hits > 100 && Percent >= 1.0
type Row struct {
	// Name is the span's display form, e.g. "parse::pairs::loop".
	Name string
	// Hits is the number of completed invocations.
	Hits uint64
	// Exclusive is the span's self time in cycles.
	Exclusive int64
	// Inclusive is the span's self+children time in cycles.
	Inclusive uint64
	// Percent is the exclusive share of the total measured window.
	Percent float64
	// PercentWithChildren is the inclusive share of the total window.
	// Equal to Percent for spans that never measured a child.
	PercentWithChildren float64
	// Leaf reports whether the span never measured a nested child.
	Leaf bool

	order uint64
}

// report holds the presentation options of one rendered profile.
type report struct {
	w      io.Writer
	filter string
	match  string
	color  bool
}

// ReportOption applies a presentation option to a rendered profile.
type ReportOption func(report) report

// applyReport applies multiple options to a report config.
func applyReport(cfg report, opts ...ReportOption) report {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithWriter returns a report option that redirects output from stdout.
func WithWriter(w io.Writer) ReportOption {
	return func(cfg report) report {
		if w != nil {
			cfg.w = w
		}

		return cfg
	}
}

// WithFilter returns a report option that keeps only span lines for which
// the given expr-lang predicate over [Row] evaluates to true. The total
// line is unaffected.
func WithFilter(src string) ReportOption {
	return func(cfg report) report {
		cfg.filter = src

		return cfg
	}
}

// WithMatch returns a report option that keeps only span lines whose display
// name fuzzy-matches query.
func WithMatch(query string) ReportOption {
	return func(cfg report) report {
		cfg.match = query

		return cfg
	}
}

// WithColor returns a report option that renders the report with terminal
// styling instead of plain text.
func WithColor(enable bool) ReportOption {
	return func(cfg report) report {
		cfg.color = enable

		return cfg
	}
}

// Styling applied by [WithColor].
//
//nolint:gochecknoglobals
var (
	styleTotal = lipgloss.NewStyle().Bold(true)
	styleName  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	stylePct   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// EndAndPrint reads the end cycle count, closes the measured window, and
// renders the report: the total line followed by one line per span in
// first-seen order.
//
// Calling EndAndPrint before [Profiler.Begin], or when the counter did not
// advance past the start stamp, is a fatal usage error and panics — the
// measurement would be meaningless. A malformed [WithFilter] expression
// returns an error instead, since it is data, not instrumentation.
func (p *Profiler) EndAndPrint(opts ...ReportOption) error {
	end := p.cfg.read()

	if !p.started || end <= p.start {
		panic("spent: profile end time is earlier than start time; " +
			"Begin must precede EndAndPrint")
	}

	cfg := applyReport(report{w: os.Stdout}, opts...)

	total := end - p.start

	rows := p.rows(total)

	rows, err := filterRows(rows, cfg)
	if err != nil {
		return err
	}

	p.render(cfg, total, rows)

	return nil
}

// rows flattens the span table into report rows sorted by first-seen order.
func (p *Profiler) rows(total uint64) []Row {
	rows := make([]Row, 0, len(p.table))

	for id, st := range p.table {
		rows = append(rows, Row{
			Name:                id.String(),
			Hits:                st.HitCount,
			Exclusive:           st.ElapsedExclusive,
			Inclusive:           st.ElapsedInclusive,
			Percent:             percent(float64(st.ElapsedExclusive), total),
			PercentWithChildren: percent(float64(st.ElapsedInclusive), total),
			Leaf:                st.Leaf(),
			order:               st.order,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].order < rows[j].order })

	return rows
}

// filterRows applies the fuzzy match and the compiled filter predicate.
func filterRows(rows []Row, cfg report) ([]Row, error) {
	if cfg.match != "" {
		names := make([]string, len(rows))
		for i, row := range rows {
			names[i] = row.Name
		}

		matched := make([]Row, 0, len(rows))
		for _, m := range fuzzy.Find(cfg.match, names) {
			matched = append(matched, rows[m.Index])
		}

		// fuzzy.Find ranks by score; restore first-seen order.
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].order < matched[j].order
		})

		rows = matched
	}

	if cfg.filter == "" {
		return rows, nil
	}

	program, err := expr.Compile(cfg.filter, expr.Env(Row{}), expr.AsBool())
	if err != nil {
		return nil, pkg.ErrFilter.Wrap(err)
	}

	kept := rows[:0]

	for _, row := range rows {
		out, err := expr.Run(program, row)
		if err != nil {
			return nil, pkg.ErrFilter.Wrap(err)
		}

		if keep, ok := out.(bool); ok && keep {
			kept = append(kept, row)
		}
	}

	return kept, nil
}

// render writes the report in the fixed two-shape line format.
func (p *Profiler) render(cfg report, total uint64, rows []Row) {
	freq := p.cfg.freq
	ms := 1000 * float64(total) / float64(freq)

	totalLine := fmt.Sprintf("Total time: %s ms (CPU freq %d)",
		strconv.FormatFloat(ms, 'f', -1, 64), freq)
	if cfg.color {
		totalLine = styleTotal.Render(totalLine)
	}

	fmt.Fprintln(cfg.w, totalLine)

	for _, row := range rows {
		fmt.Fprintln(cfg.w, renderRow(cfg, row))
	}
}

// renderRow formats a single span line. Spans without measured children show
// one percentage; spans with children additionally show their inclusive
// share.
func renderRow(cfg report, row Row) string {
	name := row.Name
	if cfg.color {
		name = styleName.Render(name)
	}

	if row.Leaf {
		pct := fmt.Sprintf("%.2f%%", row.Percent)
		if cfg.color {
			pct = stylePct.Render(pct)
		}

		return fmt.Sprintf("  %s[%d]: %d (%s)", name, row.Hits, row.Inclusive, pct)
	}

	pct := fmt.Sprintf("%.2f%%, %.2f%% w/ children",
		row.Percent, row.PercentWithChildren)
	if cfg.color {
		pct = stylePct.Render(pct)
	}

	return fmt.Sprintf("  %s[%d]: %d (%s)", name, row.Hits, row.Exclusive, pct)
}

func percent(part float64, total uint64) float64 {
	return part / float64(total) * 100
}
