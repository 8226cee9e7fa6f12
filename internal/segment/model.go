package segment

import (
	"strings"

	"github.com/mikanfactory/cxline/internal/model"
)

// ModelCollector shows the active model name.
type ModelCollector struct{}

func (ModelCollector) ID() model.SegmentID { return model.SegmentModel }

func (ModelCollector) Collect(ctx Context) (Data, bool) {
	name := strings.TrimSpace(ctx.ModelName)
	if name == "" {
		return Data{}, false
	}
	return NewData(name), true
}

func (ModelCollector) sealed() {}
