package pivot

// Collapse synchronises the cache shared items of field with its item list.
//
// values are the field's data cells in row order. The k-th distinct
// non-blank value is registered as shared item k and item slot k becomes
// the data item x=k. With hide, every slot of the field has its details
// suppressed. Slots past the last distinct value keep their type.
func Collapse(def *Definition, field int, values []string, hide bool) error {
	if err := def.checkIndex(field); err != nil {
		return err
	}
	f := &def.fields[field]
	if f.Items == nil {
		return invariantf("field %s is not on an axis", f.Name)
	}

	seen := make(map[string]bool, len(values))
	k := 0
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		x, err := def.RegisterDistinctValue(field, v)
		if err != nil {
			return err
		}
		if k == len(f.Items) {
			f.Items = append(f.Items, Item{})
		}
		f.Items[k] = Item{Type: ItemData, X: x, ShowDetails: !hide}
		k++
	}
	if hide {
		for j := k; j < len(f.Items); j++ {
			f.Items[j].ShowDetails = false
		}
	}
	return def.validateItems(field)
}
