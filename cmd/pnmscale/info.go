package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/imgio"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/preview"
	"github.com/srlehn/pnmscale/raster"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoMeanFlag, `mean`, false, `decode the pixels and show the mean color`)
}

var infoCmd = &cobra.Command{
	Use:   infoCmdStr,
	Short: `print image header fields`,
	Long: `Print the header fields of an image file.

usage: ` + os.Args[0] + ` ` + infoCmdStr + ` <in> [--mean]`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(infoFunc(args[0]))
	},
}

var (
	infoCmdStr   = `info`
	infoMeanFlag bool

	infoKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(`32`)).Width(10)
	infoBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1)
)

func infoFunc(in string) command {
	return func(e *env) error {
		rows, err := headerRows(in)
		if err != nil {
			return err
		}
		if infoMeanFlag {
			r, _, err := imgio.Load(in)
			if err != nil {
				return err
			}
			c := meanColor(r)
			p := termenv.EnvColorProfile()
			rows = append(rows, [2]string{`mean`, preview.Swatch(c, p) + ` ` + fmt.Sprintf(`#%02x%02x%02x`, c.R, c.G, c.B)})
		}
		fmt.Println(renderInfo(rows))
		return nil
	}
}

func headerRows(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	rows := [][2]string{{`file`, path}}
	if imgio.IsPNM(path) {
		h, err := pnm.DecodeHeader(f)
		if err != nil {
			return nil, err
		}
		return append(rows,
			[2]string{`format`, h.Variant.String() + ` (` + h.Variant.Ext() + `)`},
			[2]string{`width`, strconv.Itoa(h.Width)},
			[2]string{`height`, strconv.Itoa(h.Height)},
			[2]string{`maxval`, strconv.Itoa(h.MaxVal)},
			[2]string{`channels`, strconv.Itoa(h.Variant.Channels())},
			[2]string{`payload`, payloadStr(h)},
		), nil
	}
	cfg, name, err := image.DecodeConfig(f)
	if err != nil {
		return nil, errors.MarkWrap(imgio.ErrUnsupportedFormat, err, `%s`, path)
	}
	return append(rows,
		[2]string{`format`, name},
		[2]string{`width`, strconv.Itoa(cfg.Width)},
		[2]string{`height`, strconv.Itoa(cfg.Height)},
		[2]string{`channels`, strconv.Itoa(modelChannels(cfg.ColorModel))},
	), nil
}

func payloadStr(h pnm.Header) string {
	n, ok := h.Variant.PayloadLen(h.Width, h.Height)
	if !ok {
		return `overflow`
	}
	return strconv.Itoa(n) + ` bytes`
}

func modelChannels(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	}
	return 3
}

func renderInfo(rows [][2]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, infoKeyStyle.Render(row[0]), row[1]))
	}
	return infoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func meanColor(r *raster.Raster) color.RGBA {
	var sum [3]uint64
	for y := range r.Height() {
		for x := range r.Width() {
			c := color.RGBAModel.Convert(r.At(x, y)).(color.RGBA)
			sum[0] += uint64(c.R)
			sum[1] += uint64(c.G)
			sum[2] += uint64(c.B)
		}
	}
	n := uint64(r.Width() * r.Height())
	return color.RGBA{R: uint8(sum[0] / n), G: uint8(sum[1] / n), B: uint8(sum[2] / n), A: 0xff}
}
