package render

import (
	"fmt"
	"strings"

	"github.com/harrison/lsx/internal/models"
)

// Column identifies one table column.
type Column string

// Available table columns, in default display order.
const (
	ColName        Column = "name"
	ColType        Column = "type"
	ColSize        Column = "size"
	ColDate        Column = "date"
	ColPermissions Column = "permissions"
	ColOwner       Column = "owner"
	ColGroup       Column = "group"
)

// DefaultColumns returns the full column set in display order.
func DefaultColumns() []Column {
	return []Column{ColName, ColType, ColSize, ColDate, ColPermissions, ColOwner, ColGroup}
}

// ParseColumns parses a comma-separated column selection, preserving the
// requested order. An empty selection yields the default set.
func ParseColumns(csv string) ([]Column, error) {
	if strings.TrimSpace(csv) == "" {
		return DefaultColumns(), nil
	}

	valid := make(map[Column]bool)
	for _, c := range DefaultColumns() {
		valid[c] = true
	}

	var cols []Column
	for _, part := range strings.Split(csv, ",") {
		name := Column(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		if !valid[name] {
			return nil, fmt.Errorf("unknown column %q (available: name, type, size, date, permissions, owner, group)", part)
		}
		cols = append(cols, name)
	}
	if len(cols) == 0 {
		return DefaultColumns(), nil
	}
	return cols, nil
}

// header returns the column's table heading.
func (c Column) header() string {
	switch c {
	case ColName:
		return "Name"
	case ColType:
		return "Type"
	case ColSize:
		return "Size"
	case ColDate:
		return "Modified"
	case ColPermissions:
		return "Permissions"
	case ColOwner:
		return "Owner"
	case ColGroup:
		return "Group"
	default:
		return string(c)
	}
}

// dateLayout is the modified-time display format.
const dateLayout = "Mon 02 Jan 2006 15:04:05"

// value extracts the column's cell text from an entry.
func (c Column) value(e *models.Entry) string {
	switch c {
	case ColName:
		return e.Name
	case ColType:
		return e.Kind.String()
	case ColSize:
		return e.HumanSize
	case ColDate:
		if !e.ModifiedKnown() {
			return "unknown"
		}
		return e.Modified.Format(dateLayout)
	case ColPermissions:
		return e.Permissions
	case ColOwner:
		return e.Owner
	case ColGroup:
		return e.Group
	default:
		return ""
	}
}
