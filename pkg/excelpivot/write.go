package excelpivot

import (
	"errors"
	"io"

	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/pivot"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/source"
	"github.com/superrnovae/excelpivot-go/pkg/excelpivot/writer"
	"github.com/xuri/excelize/v2"
)

// Write reads every record of r, builds the workbook and writes it to w.
//
// Nothing reaches w unless the whole build succeeds. Unless
// opts.LeaveOpen is set, w is closed before Write returns when it
// implements io.Closer, whether or not the build succeeded.
func Write(w io.Writer, r source.Reader, opts Options) (err error) {
	if w == nil {
		return ErrInvalidArgument
	}
	if closer, ok := w.(io.Closer); ok && !opts.LeaveOpen {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				err = errors.Join(err, cerr)
			}
		}()
	}
	if r == nil {
		return ErrInvalidArgument
	}

	f, err := Build(r, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return NewBuildError(opts.SheetName(), ComponentSave, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return NewBuildError(opts.SheetName(), ComponentSave, err)
	}
	return nil
}

// Build reads every record of r into a new workbook. The caller owns the
// returned file and must close it.
func Build(r source.Reader, opts Options) (*excelize.File, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}
	log := opts.logger()
	sheet := opts.SheetName()

	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			f.Close()
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, NewBuildError(sheet, ComponentTable, err)
	}

	columns, err := writer.ResolveColumns(r, opts.Include, opts.Exclude)
	if err != nil {
		return nil, NewBuildError(sheet, ComponentSchema, err)
	}

	registry := opts.Registry()
	styles := writer.NewStyleCache(f, registry)
	table, err := writer.BuildTable(f, sheet, r, columns, styles, registry)
	if err != nil {
		return nil, NewBuildError(sheet, ComponentTable, err)
	}
	log.Debug("table written",
		"sheet", sheet,
		"columns", len(table.Columns),
		"records", table.Records,
		"range", table.Region.Ref(),
		"styles", styles.Len())

	if opts.Pivot != nil {
		_, err := pivot.Build(f, table, *opts.Pivot, pivot.Options{
			StrictLabels: opts.StrictLabels,
			Logger:       log,
		})
		if err != nil {
			return nil, NewBuildError(opts.Pivot.WithDefaults().SheetName, ComponentPivot, err)
		}
	}

	ok = true
	return f, nil
}
