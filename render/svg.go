package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-spiro/measure/extent"
)

// WriteSVG writes x/y as an SVG polyline using the same layout as Canvas.
func WriteSVG(w io.Writer, x, y []float64, opts ...Option) error {
	if err := validateData(x, y); err != nil {
		return err
	}
	o := ApplyOptions(opts...)
	v := newViewport(o, extent.MeasureParts(x, y))

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		o.Width, o.Height, o.Width, o.Height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", colorHex(o.Background))
	fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		ftoa(v.boxX0), ftoa(v.boxY0), ftoa(v.boxX1-v.boxX0), ftoa(v.boxY1-v.boxY0), colorHex(o.Axis))

	if len(x) > 1 {
		fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round" stroke-linecap="round" d="`,
			colorHex(o.Line), ftoa(o.LineWidth))
		buf := make([]byte, 0, 64)
		for i := range x {
			px, py := v.project(x[i], y[i])
			buf = buf[:0]
			if i == 0 {
				buf = append(buf, 'M')
			} else {
				buf = append(buf, " L"...)
			}
			buf = strconv.AppendFloat(buf, px, 'f', 2, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, py, 'f', 2, 64)
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("render: write svg path: %w", err)
			}
		}
		fmt.Fprint(bw, `"/>`+"\n")
	}

	if o.Labels {
		fmt.Fprintf(bw, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
			o.Width/2, o.Height-marginBottom/3, colorHex(o.Axis), labelReal)
		fmt.Fprintf(bw, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
			marginLeft, marginTop-6, colorHex(o.Axis), labelImag)
	}
	fmt.Fprint(bw, "</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}
	Logger().Debug("render: svg written", "points", len(x), "scale", v.scale)
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
