package segment

import (
	"path/filepath"

	"github.com/mikanfactory/cxline/internal/model"
)

// DirectoryCollector shows the last component of the working directory.
type DirectoryCollector struct{}

func (DirectoryCollector) ID() model.SegmentID { return model.SegmentDirectory }

func (DirectoryCollector) Collect(ctx Context) (Data, bool) {
	name := DirectoryName(ctx.Cwd)
	if name == "" {
		return Data{}, false
	}
	return NewData(name).WithMetadata("full_path", ctx.Cwd), true
}

func (DirectoryCollector) sealed() {}

// DirectoryName returns the final component of path. The root directory
// yields the separator itself; paths without a final component (empty, "."
// and "..") yield "".
func DirectoryName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	switch base {
	case ".", "..":
		return ""
	}
	return base
}
