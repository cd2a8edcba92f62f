package response

import (
	"github.com/jinzhu/copier"
)

// copyInto maps a query view onto a response type with the same field names.
func copyInto[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func copyAll[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		d, err := copyInto[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
