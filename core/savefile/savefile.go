package savefile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"h3sed/core/detect"
	"h3sed/core/registry"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrNotSavefile is returned when the unpacked contents lack the savefile magic.
	ErrNotSavefile = errors.New("not recognized as Heroes3 savefile")
	// ErrUnsupportedVersion is returned when no known game version matches a savefile.
	ErrUnsupportedVersion = errors.New("not recognized as Heroes3 savefile of any supported game version")
	// ErrInvalidSpan is returned for byte spans outside the unpacked contents.
	ErrInvalidSpan = errors.New("invalid byte span")
)

// BytePositions maps the labels used in version signatures to offsets in the
// unpacked contents.
var BytePositions = detect.Positions{
	"version_major": 8,
	"version_minor": 12,
}

const (
	magicPrefix = "H3SV"
	magicLength = 5
	// maxHeaderGap is the most bytes between the magic and the end of the
	// unknown header block preceding the map name.
	maxHeaderGap = 100
	// headerScanLimit bounds the search for the map name and description.
	headerScanLimit = 2048
)

// Span is a half-open byte range [Start, End) of the unpacked contents.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Savefile is a loaded savefile.
type Savefile struct {
	// Name is the file the contents were loaded from.
	Name string
	// Version is the detected game version, zero when Detected is false.
	Version registry.Version
	// Detected reports whether a known game version matched.
	Detected bool
	// MapName and MapDescription are read from the header, empty if unparsable.
	MapName        string
	MapDescription string
	// Size is the packed file size and ModTime its modification time.
	Size    int64
	ModTime time.Time

	raw   []byte
	saved []byte
	store Store
	log   *zap.Logger
}

// Load reads and unpacks a savefile, verifies its magic and detects its version
// among candidates.
func Load(store Store, name string, candidates []detect.Candidate, log *zap.Logger) (*Savefile, error) {
	if log == nil {
		log = zap.NewNop()
	}
	raw, err := readPacked(store, name)
	if err != nil {
		return nil, err
	}
	sf, err := Parse(raw, candidates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	sf.Name = name
	sf.store = store
	sf.log = log.With(zap.String("file", name))
	if err := sf.stat(name); err != nil {
		return nil, err
	}

	if sf.Detected {
		sf.log.Info("Detected savefile version", zap.String("version", sf.Version.Name))
	} else {
		sf.log.Warn("Savefile version not recognized")
	}
	if sf.MapName == "" {
		sf.log.Warn("Failed to parse map name and description")
	}
	sf.log.Info("Opened savefile",
		zap.String("size", humanize.IBytes(uint64(sf.Size))),
		zap.String("unpacked", humanize.IBytes(uint64(len(sf.raw)))),
	)
	return sf, nil
}

// Parse builds a savefile from unpacked contents. The result has no backing
// store until loaded.
func Parse(raw []byte, candidates []detect.Candidate) (*Savefile, error) {
	if !hasMagic(raw) {
		return nil, ErrNotSavefile
	}
	sf := &Savefile{
		raw:   raw,
		saved: raw,
		log:   zap.NewNop(),
	}
	sf.Version, sf.Detected = detect.Detect(raw, BytePositions, candidates)
	sf.MapName, sf.MapDescription, _ = parseHeader(raw)
	return sf, nil
}

// Require returns ErrUnsupportedVersion when no version was detected.
func (s *Savefile) Require() error {
	if !s.Detected {
		return fmt.Errorf("%s: %w", s.Name, ErrUnsupportedVersion)
	}
	return nil
}

// Bytes returns the current unpacked contents. The slice must not be modified.
func (s *Savefile) Bytes() []byte {
	return s.raw
}

// Len returns the current unpacked size.
func (s *Savefile) Len() int {
	return len(s.raw)
}

// Patch replaces the bytes in [start, end) with data. Empty data is a no-op.
func (s *Savefile) Patch(data []byte, start, end int) error {
	if len(data) == 0 {
		return nil
	}
	if start < 0 || end < start || end > len(s.raw) {
		return fmt.Errorf("%w %d..%d of %d bytes", ErrInvalidSpan, start, end, len(s.raw))
	}
	raw := make([]byte, 0, len(s.raw)-(end-start)+len(data))
	raw = append(raw, s.raw[:start]...)
	raw = append(raw, data...)
	raw = append(raw, s.raw[end:]...)
	s.raw = raw
	return nil
}

// IsChanged reports whether the contents differ from the last loaded or saved state.
func (s *Savefile) IsChanged() bool {
	return !bytes.Equal(s.raw, s.saved)
}

// Save writes the current contents to name, or to the loaded file if name is empty.
func (s *Savefile) Save(name string) error {
	name = s.target(name)
	if err := s.write(name, s.raw); err != nil {
		return err
	}
	s.saved = s.raw
	s.log.Info("Saved savefile",
		zap.String("target", name),
		zap.String("size", humanize.IBytes(uint64(s.Size))),
		zap.String("unpacked", humanize.IBytes(uint64(len(s.raw)))),
	)
	return nil
}

// SaveRanges writes the last saved contents with only the given spans taken from
// the current contents.
func (s *Savefile) SaveRanges(spans []Span, name string) error {
	name = s.target(name)
	raw := s.saved
	labels := make([]string, 0, len(spans))
	for _, span := range spans {
		if span.Start < 0 || span.End < span.Start || span.End > len(s.raw) || span.End > len(raw) {
			return fmt.Errorf("%w %s", ErrInvalidSpan, span)
		}
		merged := make([]byte, 0, len(raw))
		merged = append(merged, raw[:span.Start]...)
		merged = append(merged, s.raw[span.Start:span.End]...)
		merged = append(merged, raw[span.End:]...)
		raw = merged
		labels = append(labels, span.String())
	}
	if err := s.write(name, raw); err != nil {
		return err
	}
	s.saved = raw
	s.log.Info("Saved savefile ranges",
		zap.String("target", name),
		zap.String("ranges", strings.Join(labels, " and ")),
		zap.String("size", humanize.IBytes(uint64(s.Size))),
	)
	return nil
}

func (s *Savefile) target(name string) string {
	if name == "" {
		return s.Name
	}
	return name
}

func (s *Savefile) write(name string, raw []byte) error {
	if s.store == nil {
		return fmt.Errorf("%s: savefile has no store", name)
	}
	w, err := s.store.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	zw := gzip.NewWriter(w)
	if _, err := zw.Write(raw); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return s.stat(name)
}

func (s *Savefile) stat(name string) error {
	info, err := s.store.Stat(name)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}
	s.Size = info.Size()
	s.ModTime = info.ModTime()
	return nil
}

func readPacked(store Store, name string) ([]byte, error) {
	f, err := store.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrNotSavefile, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", name, err)
	}
	return raw, nil
}

// hasMagic reports whether raw starts with "H3SVG" or "H3SVC".
func hasMagic(raw []byte) bool {
	if len(raw) < magicLength || !bytes.HasPrefix(raw, []byte(magicPrefix)) {
		return false
	}
	return raw[4] == 'G' || raw[4] == 'C'
}

// parseHeader finds the map name and description. After the magic comes an
// unknown block of up to maxHeaderGap bytes ending in a non-zero byte, three zero
// bytes and one more byte; the two length-prefixed texts follow. The longest
// block that yields two valid texts wins.
func parseHeader(raw []byte) (name, desc string, ok bool) {
	buf := raw[:min(len(raw), headerScanLimit)]
	for gap := maxHeaderGap; gap >= 0; gap-- {
		p := magicLength + gap
		if p+5 > len(buf) {
			continue
		}
		if buf[p] == 0 || buf[p+1] != 0 || buf[p+2] != 0 || buf[p+3] != 0 {
			continue
		}
		pos := p + 5
		name, pos, ok = readText(buf, pos)
		if !ok {
			continue
		}
		desc, _, ok = readText(buf, pos)
		if ok {
			return name, desc, true
		}
	}
	return "", "", false
}

// readText reads a text prefixed by its 16-bit little-endian length. The text
// must be non-empty and free of zero bytes.
func readText(buf []byte, pos int) (string, int, bool) {
	if pos+2 > len(buf) {
		return "", pos, false
	}
	n := int(binary.LittleEndian.Uint16(buf[pos:]))
	start, end := pos+2, pos+2+n
	if n == 0 || end > len(buf) || bytes.IndexByte(buf[start:end], 0) >= 0 {
		return "", pos, false
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(buf[start:end])
	if err != nil {
		return "", pos, false
	}
	return string(text), end, true
}
