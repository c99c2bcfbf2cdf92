package bplus

import (
	"MiniDB/logger"
)

// Table is the handle the front end drives: one pager plus the page number of
// the current root. The root's location changes on root collapse.
type Table struct {
	pager       *Pager
	rootPageNum uint32
}

// Open opens the database file at path, initializing page 0 as an empty root
// leaf for a brand-new file.
func Open(path string) (*Table, error) {
	pager, err := PagerOpen(path)
	if err != nil {
		return nil, err
	}

	table := &Table{
		pager:       pager,
		rootPageNum: 0,
	}

	if pager.NumPages() == 0 {
		rootNode := node(pager.GetPage(0))
		initLeafNode(rootNode)
		rootNode.setRoot(true)
	}

	logger.Debugf("opened db %s with %d pages", path, pager.NumPages())
	return table, nil
}

// Close flushes every resident page and closes the file. Durability is
// achieved only here; there is no WAL and no fsync contract.
func (t *Table) Close() error {
	return t.pager.Close()
}
