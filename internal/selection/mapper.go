package selection

// Mapper resolves values to items and items to their position in the
// ordered candidate list. ValueToIndex and IndexOf return -1 when the
// value or item is unknown.
type Mapper[V comparable, I comparable] interface {
	ValueToIndex(value V) int
	IndexToValue(index int) (V, bool)
	ValueToItem(value V) (I, bool)
	IndexOf(item I) int
	Len() int
}

// valuesToItems resolves values in order, dropping the ones with no item
func valuesToItems[V comparable, I comparable](m Mapper[V, I], values []V) []I {
	items := make([]I, 0, len(values))
	for _, v := range values {
		if item, ok := m.ValueToItem(v); ok {
			items = append(items, item)
		}
	}
	return items
}
