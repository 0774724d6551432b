package ui

// FindElement searches c depth first for the element with id and returns it
// as a T. An element whose id matches but which is not a T does not end the
// search. Only window-like children are descended into.
func FindElement[T Element](c Container, id uint32) (T, bool) {
	return findIn[T](c.Children(), id)
}

func findIn[T Element](elements []Element, id uint32) (T, bool) {
	var zero T
	for _, e := range elements {
		if e.ID() == id {
			if t, ok := e.(T); ok {
				return t, true
			}
		}

		if !e.Type().WindowLike() {
			continue
		}
		sub, ok := e.(Container)
		if !ok {
			continue
		}
		if t, ok := findIn[T](sub.Children(), id); ok {
			return t, true
		}
	}
	return zero, false
}
