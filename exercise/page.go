package exercise

// Item is one decoded component on a page. Err is set when the stored props could not be decoded;
// such an item never evaluates correct.
type Item struct {
	Kind       Kind
	OrderIndex int
	Props      Props
	Err        error
}

// NewItem decodes a stored component, keeping the decode error instead of failing the page.
func NewItem(componentType string, orderIndex int, raw []byte) Item {
	it := Item{Kind: Kind(componentType), OrderIndex: orderIndex}
	p, err := Decode(componentType, raw)
	if err != nil {
		it.Err = err
		return it
	}
	it.Props = p
	return it
}

// Interactive reports whether the item needs an answer. Items of an unknown kind count as
// interactive so the page they sit on cannot be passed.
func (it Item) Interactive() bool {
	if _, err := ParseKind(string(it.Kind)); err != nil {
		return true
	}
	return it.Kind.Interactive()
}

// Evaluate checks r against the item. A corrupt display item is still only decoration; a corrupt
// interactive item is unverifiable.
func (it Item) Evaluate(r Response) Status {
	if it.Err != nil || it.Props == nil {
		if !it.Interactive() {
			return StatusDisplay
		}
		return StatusUnverifiable
	}
	return Evaluate(it.Props, r)
}

// HasInteractive reports whether any item on the page must be answered before the page is passed.
func HasInteractive(items []Item) bool {
	for _, it := range items {
		if it.Interactive() {
			return true
		}
	}
	return false
}

// PageResult is the outcome of checking every item on a page.
type PageResult struct {
	Satisfied bool
	Statuses  []Status
}

// Unverifiable reports whether any item could not be checked because its props are corrupt.
func (r PageResult) Unverifiable() bool {
	for _, s := range r.Statuses {
		if s == StatusUnverifiable {
			return true
		}
	}
	return false
}

// CheckPage evaluates items against responses keyed by position on the page.
func CheckPage(items []Item, responses map[int]Response) PageResult {
	res := PageResult{Satisfied: true, Statuses: make([]Status, len(items))}
	for i, it := range items {
		s := it.Evaluate(responses[i])
		res.Statuses[i] = s
		if s != StatusCorrect && s != StatusDisplay {
			res.Satisfied = false
		}
	}
	return res
}
