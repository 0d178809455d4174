package glide

import (
	"fmt"
)

// ListID is the ID of the kid holding an open popup list.
const ListID = "list"

type popup struct {
	list    *List
	kid     *Kid
	from    *Dropdown // may be nil
	subs    []*Subscription
	closing bool
}

// Popup returns the open popup list, or nil.
func (w *Window) Popup() *List {
	if w.popup == nil {
		return nil
	}
	return w.popup.list
}

// OpenList shows l on top of the window. Only one list can be open, ErrPopupOpen is
// returned when another is. A tap on an option updates from, if not nil, and
// closes the list, as does a tap outside the list. Until it is closed, all
// touches go to the list.
func (w *Window) OpenList(from *Dropdown, l *List) error {
	if w.popup != nil {
		return ErrPopupOpen
	}
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrArgument)
	}
	p := &popup{
		list: l,
		from: from,
		kid:  NewKid(ListID, l.Rect(), l),
	}
	// any gesture in progress belongs to the tree beneath
	w.Canvas.cancelTouch(w, Touch{Phase: TouchCancel})
	if err := w.Canvas.Add(p.kid); err != nil {
		return err
	}
	w.popup = p
	w.Canvas.Modal = p.kid
	p.subs = append(p.subs,
		l.OnTapOption(func(o TapOption) Event {
			return w.selectOption(p, o)
		}),
		l.OnClose(func() Event {
			if w.popup == p {
				w.CloseList()
			}
			return Event{Consumed: true}
		}),
	)
	return nil
}

// CloseList removes the open popup list. Without an open list, it does nothing.
func (w *Window) CloseList() {
	p := w.popup
	if p == nil || p.closing {
		return
	}
	p.closing = true
	for _, s := range p.subs {
		s.Cancel()
	}
	w.Canvas.RemoveKid(p.kid)
	p.list.Close()
	w.popup = nil
}

func (w *Window) selectOption(p *popup, o TapOption) (e Event) {
	if d := p.from; d != nil {
		d.Selected = o.Index
		d.Text = o.Label
		d.Value = o.Value
		w.MarkDraw(d)
		if d.Changed != nil {
			// the popup is still open, opening another from here fails
			// unless Changed closes it first
			e = d.Changed(o.Index, Option{o.Label, o.Value})
		}
	}
	if w.popup == p {
		w.CloseList()
	}
	e.Consumed = true
	return
}
