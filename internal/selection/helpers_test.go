package selection

import (
	"strconv"
)

type testItem struct {
	name string
}

// testList maps names (or positions, with byIndex) to items
type testList struct {
	items   []*testItem
	byIndex bool
}

func newTestList(names ...string) *testList {
	l := &testList{}
	for _, n := range names {
		l.items = append(l.items, &testItem{name: n})
	}
	return l
}

func (l *testList) ValueToIndex(value string) int {
	if l.byIndex {
		i, err := strconv.Atoi(value)
		if err != nil || i < 0 || i >= len(l.items) {
			return -1
		}
		return i
	}
	for i, item := range l.items {
		if item.name == value {
			return i
		}
	}
	return -1
}

func (l *testList) IndexToValue(index int) (string, bool) {
	if index < 0 || index >= len(l.items) {
		return "", false
	}
	if l.byIndex {
		return strconv.Itoa(index), true
	}
	return l.items[index].name, true
}

func (l *testList) ValueToItem(value string) (*testItem, bool) {
	i := l.ValueToIndex(value)
	if i < 0 {
		return nil, false
	}
	return l.items[i], true
}

func (l *testList) IndexOf(item *testItem) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (l *testList) Len() int {
	return len(l.items)
}

func (l *testList) item(name string) *testItem {
	for _, it := range l.items {
		if it.name == name {
			return it
		}
	}
	return nil
}

func (l *testList) remove(name string) {
	for i, it := range l.items {
		if it.name == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func names(items []*testItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}
	return out
}
