// Package table renders remote config documents and projects as terminal tables.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/atomic"
	"golang.org/x/term"

	"github.com/keboola/remote-config-modifier/internal/pkg/expression"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
)

const maxCellWidth = 40

// terminalWidth limits the width of all tables, zero means unlimited.
var terminalWidth = atomic.NewInt64(0)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1).MaxWidth(maxCellWidth + 2)
	highlightStyle = cellStyle.Foreground(lipgloss.Color("2"))
)

var parameterHeaders = []string{"Name", "Condition", "Type", "Value", "Group"}

// RemoteConfig renders all parameters and conditions of the document.
// Rows of parameters in highlight are colored.
func RemoteConfig(title string, cfg *model.RemoteConfig, highlight map[string]bool) string {
	var rows [][]string
	var highlighted []bool
	for _, entry := range cfg.Entries() {
		for _, row := range parameterRows(entry.Name, entry.Group, entry.Parameter) {
			rows = append(rows, row)
			highlighted = append(highlighted, highlight[entry.Name])
		}
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render(title))
	out.WriteString("\n")
	out.WriteString(render(parameterHeaders, rows, highlighted))
	if len(cfg.Conditions) > 0 {
		out.WriteString("\n")
		out.WriteString(titleStyle.Render("Conditions"))
		out.WriteString("\n")
		out.WriteString(Conditions(cfg.Conditions))
	}
	out.WriteString("\n")
	return out.String()
}

// Parameter renders a preview of one parameter.
func Parameter(title, name, group string, p *model.Parameter) string {
	return titleStyle.Render(title) + "\n" + render(parameterHeaders, parameterRows(name, group, p), nil) + "\n"
}

func Conditions(conditions []model.Condition) string {
	rows := make([][]string, 0, len(conditions))
	for _, c := range conditions {
		rows = append(rows, []string{c.Name, strings.Join(expression.Clauses(c.Expression), "\n && ")})
	}
	return render([]string{"Condition", "Expression"}, rows, nil)
}

func Projects(projects project.Projects) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.Name, p.Number, strings.Join(p.AppIDs, "\n")})
	}
	return render([]string{"Name", "Project number", "App IDs"}, rows, nil) + "\n"
}

func parameterRows(name, group string, p *model.Parameter) [][]string {
	defaultValue := ""
	if p.DefaultValue != nil {
		defaultValue = p.DefaultValue.String()
	}
	rows := [][]string{{name, "", ValueTypeLabel(p.ValueType), defaultValue, group}}
	for _, condition := range p.ConditionNames() {
		rows = append(rows, []string{"", condition, "", p.ConditionalValues[condition].String(), ""})
	}
	return rows
}

func ValueTypeLabel(v model.ValueType) string {
	switch v {
	case model.ValueTypeString:
		return "String"
	case model.ValueTypeBoolean:
		return "Bool"
	case model.ValueTypeNumber:
		return "Number"
	case model.ValueTypeJSON:
		return "JSON"
	default:
		return "Unspecified"
	}
}

// FitTerminal limits tables to the width of the terminal.
// It returns false if the fd is not a terminal.
func FitTerminal(fd uintptr) bool {
	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return false
	}
	terminalWidth.Store(int64(width))
	return true
}

func render(headers []string, rows [][]string, highlighted []bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(highlighted) && highlighted[row]:
				return highlightStyle
			default:
				return cellStyle
			}
		})
	if width := terminalWidth.Load(); width > 0 {
		t = t.Width(int(width))
	}
	return t.String()
}
