package snapshot

import (
	"github.com/hapax/vaultbak/internal/errors"
	"github.com/hapax/vaultbak/internal/stream"
)

// sectionOrder is the fixed tag sequence §4.4/§6 specify, each tag naming
// the section that follows it in the stream (see internal/stream's package
// doc for why the tag trails rather than leads its section).
var sectionOrder = []string{
	"Version", "Time", "DataFolderPath",
	"FolderFilterArray", "FolderFilterIsInclusiveArray",
	"FileFilterArray", "FileFilterIsInclusiveArray",
	"SelectedFileFilterArray",
	"FolderArray", "FileArray", "",
}

// Serialize encodes s into the .dbs wire format.
func (s *Snapshot) Serialize() []byte {
	w := stream.NewWriter()

	write := func(idx int, build func(*stream.Builder)) {
		b := stream.NewBuilder()
		build(b)
		w.WriteSection(b.Bytes(), sectionOrder[idx+1])
	}

	write(0, func(b *stream.Builder) { b.PutVaruint(uint64(s.Version)) })
	write(1, func(b *stream.Builder) { b.PutVaruint(ToTicks(s.Time)) })
	write(2, func(b *stream.Builder) { b.PutText(s.DataFolderPath) })
	write(3, func(b *stream.Builder) { putTextArray(b, s.FolderFilters) })
	write(4, func(b *stream.Builder) { putBoolArray(b, s.FolderFilterIsInclusive) })
	write(5, func(b *stream.Builder) { putTextArray(b, s.FileFilters) })
	write(6, func(b *stream.Builder) { putBoolArray(b, s.FileFilterIsInclusive) })
	write(7, func(b *stream.Builder) { putTextArray(b, s.SelectedFileFilters) })
	write(8, func(b *stream.Builder) { putFolderArray(b, s.Folders) })
	write(9, func(b *stream.Builder) { putFileArray(b, s.Files) })

	return w.Bytes()
}

// Deserialize decodes a .dbs stream produced by Serialize, rebuilding each
// folder's Path from its ancestors and the lookup maps BuildLookups
// maintains.
func Deserialize(data []byte) (*Snapshot, error) {
	r := stream.NewReader(data)
	s := &Snapshot{}

	read := func(idx int, decode func(*stream.Cursor) error) error {
		_, err := r.ReadSection(sectionOrder[idx+1], decode)
		if err != nil {
			return errors.Categorize(errors.Integrity, errors.Wrapf(err, "section %s", sectionOrder[idx]))
		}
		return nil
	}

	if err := read(0, func(c *stream.Cursor) error {
		v, err := c.GetU32()
		s.Version = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(1, func(c *stream.Cursor) error {
		v, err := c.GetVaruint()
		s.Time = FromTicks(v)
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(2, func(c *stream.Cursor) error {
		v, err := c.GetText()
		s.DataFolderPath = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(3, func(c *stream.Cursor) error {
		v, err := getTextArray(c)
		s.FolderFilters = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(4, func(c *stream.Cursor) error {
		v, err := getBoolArray(c)
		s.FolderFilterIsInclusive = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(5, func(c *stream.Cursor) error {
		v, err := getTextArray(c)
		s.FileFilters = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(6, func(c *stream.Cursor) error {
		v, err := getBoolArray(c)
		s.FileFilterIsInclusive = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(7, func(c *stream.Cursor) error {
		v, err := getTextArray(c)
		s.SelectedFileFilters = v
		return err
	}); err != nil {
		return nil, err
	}

	if err := read(8, func(c *stream.Cursor) error {
		v, err := getFolderArray(c)
		s.Folders = v
		return err
	}); err != nil {
		return nil, err
	}
	resolveFolderPaths(s.Folders)

	if err := read(9, func(c *stream.Cursor) error {
		v, err := getFileArray(c)
		s.Files = v
		return err
	}); err != nil {
		return nil, err
	}

	s.BuildLookups()
	return s, nil
}

// resolveFolderPaths reconstructs each Folder's Path as parent.Path +
// name + "/", per §4.4. Folders are stored parent-first (§3's invariant
// SuperFolderIndex < index-of-self), so a single forward pass suffices.
func resolveFolderPaths(folders []*Folder) {
	for _, f := range folders {
		if f.IsRoot() {
			f.Path = ""
			continue
		}
		parent := folders[f.SuperFolderIndex]
		f.Path = parent.Path + f.Name + "/"
	}
}

func putTextArray(b *stream.Builder, items []string) {
	b.PutVaruint(uint64(len(items)))
	for _, s := range items {
		b.PutText(s)
	}
}

func getTextArray(c *stream.Cursor) ([]string, error) {
	n, err := c.GetU32()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		v, err := c.GetText()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func putBoolArray(b *stream.Builder, items []bool) {
	b.PutVaruint(uint64(len(items)))
	for _, v := range items {
		b.PutBool(v)
	}
}

func getBoolArray(c *stream.Cursor) ([]bool, error) {
	n, err := c.GetU32()
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i := range out {
		v, err := c.GetBool()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// rootSentinel is the wire-format value for "no parent", per §3/§9. It is
// only ever materialised here, at the serialisation boundary; everywhere
// else the in-memory model uses RootParent.
const rootSentinel uint32 = 0xFFFFFFFF

func putFolderArray(b *stream.Builder, folders []*Folder) {
	b.PutVaruint(uint64(len(folders)))
	for _, f := range folders {
		super := rootSentinel
		if !f.IsRoot() {
			super = uint32(f.SuperFolderIndex)
		}
		b.PutVaruint(uint64(super))
		b.PutText(f.Name)
		b.PutVaruint(ToTicks(f.AccessTime))
		b.PutVaruint(ToTicks(f.ModificationTime))
		b.PutVaruint(uint64(f.AttributeMask))
	}
}

func getFolderArray(c *stream.Cursor) ([]*Folder, error) {
	n, err := c.GetU32()
	if err != nil {
		return nil, err
	}
	out := make([]*Folder, n)
	for i := range out {
		super, err := c.GetVaruint()
		if err != nil {
			return nil, err
		}
		name, err := c.GetText()
		if err != nil {
			return nil, err
		}
		atime, err := c.GetVaruint()
		if err != nil {
			return nil, err
		}
		mtime, err := c.GetVaruint()
		if err != nil {
			return nil, err
		}
		mask, err := c.GetU32()
		if err != nil {
			return nil, err
		}

		f := &Folder{
			Name:              name,
			AccessTime:        FromTicks(atime),
			ModificationTime:  FromTicks(mtime),
			AttributeMask:     mask,
		}
		if uint32(super) == rootSentinel {
			f.SuperFolderIndex = RootParent
		} else {
			if int(super) >= i {
				return nil, errors.Categorize(errors.Integrity,
					errors.Errorf("folder %d: parent index %d does not precede it", i, super))
			}
			f.SuperFolderIndex = int(super)
		}
		out[i] = f
	}
	return out, nil
}

func putFileArray(b *stream.Builder, files []*File) {
	b.PutVaruint(uint64(len(files)))
	for _, f := range files {
		b.PutVaruint(uint64(f.FolderIndex))
		b.PutText(f.Name)
		b.PutHash(f.Hash)
		b.PutVaruint(f.ByteCount)
		b.PutVaruint(ToTicks(f.AccessTime))
		b.PutVaruint(ToTicks(f.ModificationTime))
		b.PutVaruint(uint64(f.AttributeMask))
	}
}

func getFileArray(c *stream.Cursor) ([]*File, error) {
	n, err := c.GetU32()
	if err != nil {
		return nil, err
	}
	out := make([]*File, n)
	for i := range out {
		folderIndex, err := c.GetU32()
		if err != nil {
			return nil, err
		}
		name, err := c.GetText()
		if err != nil {
			return nil, err
		}
		hash, err := c.GetHash()
		if err != nil {
			return nil, err
		}
		byteCount, err := c.GetVaruint()
		if err != nil {
			return nil, err
		}
		atime, err := c.GetVaruint()
		if err != nil {
			return nil, err
		}
		mtime, err := c.GetVaruint()
		if err != nil {
			return nil, err
		}
		mask, err := c.GetU32()
		if err != nil {
			return nil, err
		}

		out[i] = &File{
			FolderIndex:       int(folderIndex),
			Name:              name,
			Hash:              hash,
			ByteCount:         byteCount,
			AccessTime:        FromTicks(atime),
			ModificationTime:  FromTicks(mtime),
			AttributeMask:     mask,
		}
	}
	return out, nil
}
