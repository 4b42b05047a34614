package ssd1306

import "bytes"

// calculateDiff compares the frame buffer with the last transferred frame and
// returns the smallest box of pages startPage..endPage-1 and columns
// startCol..endCol-1 holding every change. skip is true when nothing changed.
func (d *Dev) calculateDiff() (startPage, endPage, startCol, endCol int, skip bool) {
	w := d.rect.Dx()
	next := d.img.Pix
	endPage = d.pages
	endCol = w

	// Top.
	for ; startPage < endPage; startPage++ {
		if !bytes.Equal(d.sent[startPage*w:(startPage+1)*w], next[startPage*w:(startPage+1)*w]) {
			break
		}
	}
	// Bottom.
	for ; endPage > startPage; endPage-- {
		if !bytes.Equal(d.sent[(endPage-1)*w:endPage*w], next[(endPage-1)*w:endPage*w]) {
			break
		}
	}
	if startPage == endPage {
		return 0, 0, 0, 0, true
	}

	// Left.
	for ; startCol < endCol; startCol++ {
		if d.columnChanged(startCol, startPage, endPage) {
			break
		}
	}
	// Right.
	for ; endCol > startCol; endCol-- {
		if d.columnChanged(endCol-1, startPage, endPage) {
			break
		}
	}
	return startPage, endPage, startCol, endCol, false
}

func (d *Dev) columnChanged(col, startPage, endPage int) bool {
	w := d.rect.Dx()
	for page := startPage; page < endPage; page++ {
		if d.sent[page*w+col] != d.img.Pix[page*w+col] {
			return true
		}
	}
	return false
}

// extractRegion returns the frame buffer bytes of a page and column box in
// the order the controller consumes them in horizontal addressing mode: page
// by page, left to right.
func (d *Dev) extractRegion(startPage, endPage, startCol, endCol int) []byte {
	w := d.rect.Dx()
	cols := endCol - startCol
	result := make([]byte, 0, cols*(endPage-startPage))
	for page := startPage; page < endPage; page++ {
		start := page*w + startCol
		result = append(result, d.img.Pix[start:start+cols]...)
	}
	return result
}
