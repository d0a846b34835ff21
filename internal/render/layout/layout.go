package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxW := rect.Dx()
	maxH := rect.Dy()
	if widthPx > maxW {
		widthPx = maxW
	}
	if heightPx > maxH {
		heightPx = maxH
	}
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// FitSquare returns the largest square that fits into rect, anchored at the top-left.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	if size < 0 {
		size = 0
	}
	return AnchorTopLeft(rect, size, size)
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in the bottom-right of rect.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	tl := AnchorTopLeft(rect, widthPx, heightPx)
	rect = Normalize(rect)
	return tl.Add(image.Pt(rect.Max.X-tl.Max.X, rect.Max.Y-tl.Max.Y))
}

// FitAspect returns the largest rectangle with the aspect ratio of
// aspectW:aspectH that fits into rect, centered.
func FitAspect(rect image.Rectangle, aspectW, aspectH int) image.Rectangle {
	rect = Normalize(rect)
	if aspectW <= 0 || aspectH <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	w := rect.Dx()
	h := w * aspectH / aspectW
	if h > rect.Dy() {
		h = rect.Dy()
		w = h * aspectW / aspectH
	}
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
