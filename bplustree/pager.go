package bplus

import (
	"os"

	"MiniDB/logger"
	"MiniDB/types"

	"github.com/pkg/errors"
)

// Pager owns the database file and a fixed array of page slots. There is no
// eviction: TableMaxPages bounds the whole store, and exceeding it is fatal.
type Pager struct {
	file       *os.File
	fileLength int64
	numPages   uint32
	pages      [types.TableMaxPages][]byte
}

// PagerOpen opens or creates the database file and validates its length.
func PagerOpen(path string) (*Pager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", path)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "stat db file")
	}

	fileLength := stat.Size()
	if fileLength%types.PageSize != 0 {
		file.Close()
		return nil, errors.Errorf("db file is not a whole number of pages, corrupt file: %d bytes", fileLength)
	}

	return &Pager{
		file:       file,
		fileLength: fileLength,
		numPages:   uint32(fileLength / types.PageSize),
	}, nil
}

// GetPage returns the in-memory buffer for page pageNum, reading it from disk
// on first access or zero-filling it if it lies past the end of the file.
// Page numbers at or beyond TableMaxPages abort the process.
func (p *Pager) GetPage(pageNum uint32) []byte {
	if pageNum >= types.TableMaxPages {
		logger.Fatalf("tried to fetch page number out of bounds: %d >= %d", pageNum, types.TableMaxPages)
	}

	if p.pages[pageNum] == nil {
		page := make([]byte, types.PageSize)
		numPagesOnDisk := uint32(p.fileLength / types.PageSize)

		if pageNum < numPagesOnDisk {
			offset := int64(pageNum) * types.PageSize
			if _, err := p.file.ReadAt(page, offset); err != nil {
				logger.Fatalf("error reading page %d: %v", pageNum, err)
			}
		}

		p.pages[pageNum] = page
		if pageNum >= p.numPages {
			p.numPages = pageNum + 1
		}
	}

	return p.pages[pageNum]
}

// Flush writes the full 4KB slot for pageNum back to disk.
func (p *Pager) Flush(pageNum uint32) error {
	if p.pages[pageNum] == nil {
		return errors.Errorf("tried to flush null page %d", pageNum)
	}
	offset := int64(pageNum) * types.PageSize
	if _, err := p.file.WriteAt(p.pages[pageNum], offset); err != nil {
		return errors.Wrapf(err, "writing page %d", pageNum)
	}
	return nil
}

// UnusedPageNum returns the page number a new allocation will occupy. Until
// pages are recycled, new pages go onto the end of the file.
func (p *Pager) UnusedPageNum() uint32 {
	return p.numPages
}

// NumPages reports how many pages the store currently spans.
func (p *Pager) NumPages() uint32 {
	return p.numPages
}

// Close flushes every resident page and closes the file.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.numPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			return err
		}
		p.pages[i] = nil
	}
	return p.file.Close()
}
