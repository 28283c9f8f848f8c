package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/platform/archive"
	"inventaris-lab-backend/internal/platform/logger"
)

// Recorder counts exports; the metrics package implements it.
type Recorder interface {
	Exported(resource string, archived bool)
}

type Exporter struct {
	archive archive.Store
	log     *logger.Logger
	rec     Recorder
	clock   inventory.Clock
	id      inventory.IDGen
}

// New returns an Exporter. store may be nil when archiving is off.
func New(store archive.Store, log *logger.Logger) *Exporter {
	if log == nil {
		log = logger.Nop()
	}
	return &Exporter{
		archive: store,
		log:     log,
		clock:   inventory.RealClock{},
		id:      inventory.NewULIDGen(),
	}
}

func (e *Exporter) WithRecorder(r Recorder) *Exporter {
	e.rec = r
	return e
}

// Serve renders the workbook and sends it as an attachment named
// <filename>.xlsx. A copy goes to the archive under
// exports/<resource>/<ULID>.xlsx; archive failures are only logged.
func (e *Exporter) Serve(c *gin.Context, resource, filename string, sheets ...Sheet) {
	buf, err := Workbook(sheets...)
	if err != nil {
		inventory.RespondError(c, fmt.Errorf("render %s: %w", resource, err))
		return
	}

	archived := e.store(c.Request.Context(), resource, buf.Bytes())
	if e.rec != nil {
		e.rec.Exported(resource, archived)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
	c.Data(http.StatusOK, ContentType, buf.Bytes())
}

func (e *Exporter) store(ctx context.Context, resource string, data []byte) bool {
	if e.archive == nil {
		return false
	}
	key := fmt.Sprintf("exports/%s/%s.xlsx", resource, e.id.NewULID(e.clock.Now()))

	// The download must not wait on a slow bucket for long.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.archive.Put(ctx, key, bytes.NewReader(data), ContentType); err != nil {
		e.log.Warn("export archive failed", "resource", resource, "key", key, "driver", e.archive.Driver(), "error", err)
		return false
	}
	e.log.Debug("export archived", "resource", resource, "key", key)
	return true
}
