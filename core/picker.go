package core

import (
	"slices"
	"strings"
)

// PickerItem is one selectable row. Disabled rows stay visible but cannot
// be chosen.
type PickerItem struct {
	ID       string
	Label    string
	Section  string
	Meta     string
	Search   string
	Disabled bool
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker filters items with a fuzzy query, grouped by section in first-seen
// order.
type Picker struct {
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{}
	p.SetItems(items)
	return p
}

func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }
func (p *Picker) Len() int      { return len(p.filtered) }

func (p *Picker) Items() []PickerItem {
	return slices.Clone(p.filtered)
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = slices.Clone(items)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[min(max(p.cursor, 0), len(p.filtered)-1)], true
}

// HandleKey applies a key name. Arrow keys move, so every printable key is
// free for the query.
func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
			return PickerResult{Action: PickerActionMoved}
		}
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return PickerResult{Action: PickerActionMoved}
		}
	case "enter":
		item, ok := p.CurrentItem()
		if ok && !item.Disabled {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if q := []rune(p.query); len(q) > 0 {
			p.SetQuery(string(q[:len(q)-1]))
		}
	case "space":
		p.SetQuery(p.query + " ")
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerResult{Action: PickerActionNone}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	var sections []string
	bySection := make(map[string][]scoredPickerItem)
	for idx, item := range p.items {
		if _, seen := bySection[item.Section]; !seen {
			sections = append(sections, item.Section)
			bySection[item.Section] = nil
		}
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		bySection[item.Section] = append(bySection[item.Section], scoredPickerItem{item: item, score: score, index: idx})
	}

	out := make([]PickerItem, 0, len(p.items))
	for _, section := range sections {
		scored := bySection[section]
		slices.SortStableFunc(scored, func(a, b scoredPickerItem) int {
			if a.score != b.score {
				return b.score - a.score
			}
			return a.index - b.index
		})
		for _, row := range scored {
			out = append(out, row.item)
		}
	}
	p.filtered = out
	p.cursor = min(max(p.cursor, 0), max(len(out)-1, 0))
}

// fuzzyMatchScore matches query as an in-order subsequence of label.
// Prefix hits, adjacent runs and exact matches score higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	from := 0
	for i := 0; i < len(queryLower); i++ {
		j := strings.IndexByte(labelLower[from:], queryLower[i])
		if j < 0 {
			return false, 0
		}
		matchIdx = append(matchIdx, from+j)
		from += j + 1
	}

	score := len(queryLower)
	if matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
