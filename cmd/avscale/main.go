package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/asticode/go-astiav"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avscale/frame"
	"github.com/xaionaro-go/avscale/geometry"
	avlogger "github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/scaler"
	"github.com/xaionaro-go/avscale/types"
	avtypes "github.com/xaionaro-go/avscale/types/astiav"
	"github.com/xaionaro-go/avscale/vfscale"
	"github.com/xaionaro-go/observability"
	"gopkg.in/yaml.v3"
)

func parseInputGeometry(s string) (size, display types.Resolution, _err error) {
	sizeStr, displayStr, hasDisplay := strings.Cut(s, ":")
	if err := size.Parse(sizeStr); err != nil {
		return size, display, err
	}
	display = size
	if hasDisplay {
		if err := display.Parse(displayStr); err != nil {
			return size, display, err
		}
	}
	return size, display, nil
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <W>x<H>[:<DW>x<DH>] <pixel-format>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	configPath := pflag.String("config", "", "path to a YAML file with the filter configuration; flags override it")
	width := pflag.Int("w", -1, "output width (0: display width, -1: input width, -2/-3: derive from height, -8..-11: the same rounded to 16)")
	height := pflag.Int("h", -1, "output height, see --w")
	param := pflag.Float64("param", 0, "first tuning parameter of the scaling algorithm [0..100]; validated, but ignored by both engines")
	param2 := pflag.Float64("param2", 0, "second tuning parameter of the scaling algorithm [0..100]; validated, but ignored by both engines")
	chromaDrop := pflag.Int("chr-drop", 0, "skip chroma lines of the input [0..3]")
	noUpscale := pflag.Int("noup", 0, "do not upscale: 1 if any axis would grow, 2 if both would")
	accurateRounding := pflag.Bool("arnd", false, "use accurate rounding")
	algorithm := pflag.String("algorithm", scaler.AlgorithmDefault.String(), "scaling algorithm")
	accept := pflag.String("accept", "", "pixel formats the next stage accepts, e.g. 'yuv420p:hw,rgba'; empty accepts everything")
	engineName := pflag.String("engine", "swscale", "scaling engine: swscale|bild")
	transform := pflag.Bool("transform", false, "push a black frame through the filter")
	inColorSpace := pflag.String("input-color-space", types.ColorSpaceAuto.String(), "colour space of the input frames (auto|bt.601|bt.709|smpte-240m|bt.2020-ncl|bt.2020-cl|rgb|xyz|ycgco)")
	pflag.Parse()
	if len(pflag.Args()) != 2 {
		pflag.Usage()
		os.Exit(1)
	}

	ctx, l := avlogger.CtxWithLogrus(context.Background(), loggerLevel)
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func() { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	astiav.SetLogLevel(avtypes.LogLevelToAstiav(l.Level()))
	astiav.SetLogCallback(func(c astiav.Classer, level astiav.LogLevel, fmt, msg string) {
		var cs string
		if c != nil {
			if cl := c.Class(); cl != nil {
				cs = " - class: " + cl.String()
			}
		}
		l.Logf(
			avtypes.LogLevelFromAstiav(level),
			"%s%s",
			strings.TrimSpace(msg), cs,
		)
	})

	cfg := vfscale.DefaultConfig()
	if *configPath != "" {
		b, err := os.ReadFile(*configPath)
		if err != nil {
			l.Fatalf("unable to read '%s': %v", *configPath, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			l.Fatalf("unable to parse '%s': %v", *configPath, err)
		}
	}
	flags := pflag.CommandLine
	if flags.Changed("w") || *configPath == "" {
		cfg.Width = *width
	}
	if flags.Changed("h") || *configPath == "" {
		cfg.Height = *height
	}
	if flags.Changed("param") {
		cfg.Param = param
	}
	if flags.Changed("param2") {
		cfg.Param2 = param2
	}
	if flags.Changed("chr-drop") {
		cfg.ChromaDrop = *chromaDrop
	}
	if flags.Changed("noup") {
		cfg.NoUpscale = geometry.NoUpscale(*noUpscale)
	}
	if flags.Changed("arnd") {
		cfg.AccurateRounding = *accurateRounding
	}
	if flags.Changed("algorithm") || *configPath == "" {
		a, err := scaler.AlgorithmFromString(*algorithm)
		if err != nil {
			l.Fatal(err)
		}
		cfg.Algorithm = a
	}

	size, displaySize, err := parseInputGeometry(pflag.Arg(0))
	if err != nil {
		l.Fatal(err)
	}
	inPixFmt, err := pixfmt.Parse(pflag.Arg(1))
	if err != nil {
		l.Fatal(err)
	}
	colorSpace, err := types.ColorSpaceFromString(*inColorSpace)
	if err != nil {
		l.Fatal(err)
	}
	downstream, err := parseAccept(*accept)
	if err != nil {
		l.Fatal(err)
	}

	var engine scaler.Engine
	switch *engineName {
	case "swscale":
		engine = scaler.NewSoftware(ctx)
	case "bild":
		engine = scaler.NewBild()
	default:
		l.Fatalf("unknown engine '%s'", *engineName)
	}

	filter, err := vfscale.New(ctx, cfg, downstream, engine, frame.PoolAllocator{FillBlack: true})
	if err != nil {
		l.Fatal(err)
	}
	defer filter.Close(ctx)

	in := types.ImageParams{
		PixelFormat: inPixFmt,
		Size:        size,
		DisplaySize: displaySize,
		ColorSpace:  colorSpace,
	}
	fmt.Printf("filter: %s\n", filter)
	fmt.Printf("input %s: %s\n", inPixFmt, filter.QueryFormat(ctx, inPixFmt))

	out, err := filter.Reconfigure(ctx, in)
	if err != nil {
		l.Fatal(err)
	}
	fmt.Printf("output: %s\n", out)

	outFrame, err := frame.NewVideo(ctx, out, false)
	if err != nil {
		l.Fatal(err)
	}
	bufSize, err := outFrame.ImageBufferSize(1)
	frame.Pool.Put(outFrame)
	if err != nil {
		l.Fatal(err)
	}
	fmt.Printf("output frame buffer: %s\n", humanize.Bytes(uint64(bufSize)))

	if !*transform {
		return
	}

	inFrame, err := frame.NewVideo(ctx, in, true)
	if err != nil {
		l.Fatal(err)
	}
	defer frame.Pool.Put(inFrame)
	result, err := filter.TransformFrame(ctx, inFrame)
	if err != nil {
		l.Fatal(err)
	}
	frame.Pool.Put(result)

	stats, err := yaml.Marshal(filter.Stats())
	if err != nil {
		l.Fatal(err)
	}
	fmt.Printf("%s", stats)
}
