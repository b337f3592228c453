package composer

import "slices"

// Attachment is a staged, not-yet-sent image.
type Attachment struct {
	ID     string
	Source Source
	Blob   Payload
	Handle Handle // Owned by the staging area until removal, reset or commit
}

// staging holds attachments in arrival order. Every attachment it holds has
// exactly one live handle in the store.
type staging struct {
	items   []Attachment
	handles HandleStore
	newID   func() string
}

// add filters out non-images and stages the rest, preserving order.
func (s *staging) add(src Source, payloads []Payload) []Attachment {
	var added []Attachment
	for _, p := range payloads {
		if !p.IsImage() {
			continue
		}
		att := Attachment{
			ID:     s.newID(),
			Source: src,
			Blob:   p,
			Handle: s.handles.Allocate(p),
		}
		s.items = append(s.items, att)
		added = append(added, att)
	}
	return added
}

// remove revokes and drops the attachment with id. Absent ids are a no-op.
func (s *staging) remove(id string) bool {
	i := slices.IndexFunc(s.items, func(a Attachment) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	s.handles.Revoke(s.items[i].Handle)
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// reset revokes every staged handle once and empties the area. Returns the
// number of attachments released.
func (s *staging) reset() int {
	n := len(s.items)
	for _, a := range s.items {
		s.handles.Revoke(a.Handle)
	}
	s.items = nil
	return n
}

// commit produces message-owned image refs. Each ref gets its own handle so
// the subsequent reset can't invalidate it.
func (s *staging) commit() []ImageRef {
	if len(s.items) == 0 {
		return nil
	}
	refs := make([]ImageRef, len(s.items))
	for i, a := range s.items {
		refs[i] = ImageRef{
			ID:     a.ID,
			Name:   a.Blob.Name,
			Handle: s.handles.Allocate(a.Blob),
		}
	}
	return refs
}

func (s *staging) len() int {
	return len(s.items)
}

func (s *staging) snapshot() []Attachment {
	return slices.Clone(s.items)
}
