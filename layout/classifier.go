package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/grid"
)

// ErrNoNameColumn is returned when no header names the officeholder column
var ErrNoNameColumn = errors.New("no name column")

// Layout maps column roles to logical column indices
type Layout struct {
	cols  map[Role]int
	extra []int
}

// Column returns the column holding role. RoleExtra is not a singular role;
// use Extra for it.
func (l *Layout) Column(role Role) (int, bool) {
	if l == nil {
		return 0, false
	}
	c, ok := l.cols[role]
	return c, ok
}

// Has reports whether role was assigned a column
func (l *Layout) Has(role Role) bool {
	if role == RoleExtra {
		return l != nil && len(l.extra) > 0
	}
	_, ok := l.Column(role)
	return ok
}

// Extra returns the free-text columns left to right
func (l *Layout) Extra() []int {
	if l == nil {
		return nil
	}
	return append([]int(nil), l.extra...)
}

// String renders the layout as "name=2 party=3 term=4 extra=[5]", roles in
// enum order.
func (l *Layout) String() string {
	if l == nil {
		return "<nil>"
	}
	roles := make([]Role, 0, len(l.cols))
	for r := range l.cols {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	parts := make([]string, 0, len(roles)+1)
	for _, r := range roles {
		parts = append(parts, fmt.Sprintf("%s=%d", r, l.cols[r]))
	}
	if len(l.extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra=%v", l.extra))
	}
	return strings.Join(parts, " ")
}

func (l *Layout) set(role Role, col int) {
	l.cols[role] = col
}

// Classify assigns roles to the columns of g from its first row. Header
// positions are read left to right up to the first empty one; a header cell
// spanning several positions is classified once. Later headers claiming a
// singular role replace earlier ones.
func Classify(g *grid.Grid) (*Layout, error) {
	l := &Layout{cols: make(map[Role]int)}

	seen := make(map[int]bool)
	for col, cell := range g.HeaderRow() {
		if cell == nil {
			break
		}
		if !cell.IsHeader || seen[cell.ID] {
			continue
		}
		seen[cell.ID] = true

		text := fields.Lower(fields.CleanText(cell.Text))
		last := col + cell.ColSpan - 1

		switch role := MatchHeader(text); role {
		case RoleNone:
		case RoleName:
			l.set(RoleName, col)
			if cell.ColSpan > 1 {
				l.set(RoleName, last)
				l.set(RoleNameImage, col)
			}
		case RoleParty:
			l.set(RoleParty, col)
			if cell.ColSpan > 1 {
				l.set(RoleParty, last)
				l.set(RolePartyColor, col)
			}
		case RoleTerm:
			if cell.ColSpan > 1 {
				l.set(RoleStart, col)
				l.set(RoleEnd, last)
			} else {
				l.set(RoleTerm, col)
			}
		case RoleExtra:
			l.extra = append(l.extra, col)
		default:
			l.set(role, col)
		}
	}

	if !l.Has(RoleName) {
		return l, ErrNoNameColumn
	}
	return l, nil
}
