package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaweX/pid"
	pidimage "github.com/PaweX/pid/image"
	"github.com/PaweX/pid/png"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func depthFromContext(c *cli.Context) (png.Depth, error) {
	switch d := c.Int("png-depth"); d {
	case 8, 24, 32:
		return png.Depth(d), nil
	default:
		return 0, fmt.Errorf("unsupported PNG depth %d, want 8, 24 or 32", d)
	}
}

func newConverter(c *cli.Context) (*pid.Converter, error) {
	depth, err := depthFromContext(c)
	if err != nil {
		return nil, err
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return pid.New(depth, logger), nil
}

func convert(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	m, err := newConverter(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	id := strings.ToUpper(c.String("format"))
	target, ok := pid.Target(id, m.Depth())
	if !ok {
		return cli.NewExitError(fmt.Sprintf("unsupported target format %q", id), 1)
	}

	source := c.Args().First()
	output := c.Args().Get(1)
	if output == "" {
		output = strings.TrimSuffix(source, filepath.Ext(source)) + "." + target.Ext
	}

	src, err := os.Open(source)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer src.Close()

	dst, err := os.Create(output)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := m.Convert(pid.NewFileStream(src), pid.NewFileStream(dst), target.ID); err != nil {
		dst.Close()
		os.Remove(output)
		return cli.NewExitError(err, 1)
	}

	return dst.Close()
}

func scan(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	m, err := newConverter(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := m.Scan(c.Args().First(), strings.ToUpper(c.String("format"))); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer f.Close()

	h, err := pidimage.DecodeHeader(f)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Printf("%dx%d pixels\n", h.Width, h.Height)
	fmt.Printf("transparent: %t\n", h.Flags&pidimage.FlagTransparency != 0)
	fmt.Printf("mirrored:    %t\n", h.Flags&pidimage.FlagMirror != 0)
	fmt.Printf("inverted:    %t\n", h.Flags&pidimage.FlagInvert != 0)
	fmt.Printf("compressed:  %t\n", h.Flags&pidimage.FlagRLE != 0)
	fmt.Printf("palette:     %t\n", h.Flags&pidimage.FlagPalette != 0)

	return nil
}

func formats(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	depth, err := depthFromContext(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	list := pid.Formats(c.Args().First(), depth)
	if list == nil {
		return cli.NewExitError("not a PID file", 1)
	}

	for _, f := range list {
		fmt.Printf("%-5s .%-4s %s\n", f.ID, f.Ext, f.Display)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "pidconv"
	app.Usage = "Convert Gruntz (1999) .PID images to BMP, TGA or PNG"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "png-depth",
			EnvVars: []string{"PIDCONV_PNG_DEPTH"},
			Value:   8,
			Usage:   "PNG output depth (8, 24 or 32)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   pid.FormatPNG,
		Usage:   "target format (BMP, TGA8 or PNG)",
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a single PID file",
			ArgsUsage: "FILE [OUTPUT]",
			Flags:     []cli.Flag{formatFlag},
			Action:    convert,
		},
		{
			Name:      "scan",
			Usage:     "Convert every PID file under a directory",
			ArgsUsage: "DIRECTORY",
			Flags:     []cli.Flag{formatFlag},
			Action:    scan,
		},
		{
			Name:      "info",
			Usage:     "Show the header of a PID file",
			ArgsUsage: "FILE",
			Action:    info,
		},
		{
			Name:      "formats",
			Usage:     "List the conversion targets offered for a file",
			ArgsUsage: "FILE",
			Action:    formats,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
