package model

import "strconv"

// SizeContent is the serialized sentinel for a content-sized dimension.
const SizeContent = "SIZE_CONTENT"

// Dimension is a widget width or height: either a pixel count or the
// content-sized sentinel. The zero value is content-sized, which is also
// every widget type's default, so freshly created widgets shrink-wrap.
type Dimension struct {
	px      int
	isFixed bool
}

// Px returns a fixed pixel dimension.
func Px(n int) Dimension {
	return Dimension{px: n, isFixed: true}
}

// Content returns the content-sized dimension.
func Content() Dimension {
	return Dimension{}
}

// IsContent reports whether the dimension is content-sized.
func (d Dimension) IsContent() bool {
	return !d.isFixed
}

// Pixels returns the fixed pixel count. Only meaningful when !IsContent().
func (d Dimension) Pixels() int {
	return d.px
}

func (d Dimension) String() string {
	if d.IsContent() {
		return SizeContent
	}
	return strconv.Itoa(d.px)
}
