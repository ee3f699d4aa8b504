package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/uniconv/convert"
)

func main() {
	var (
		decodeHex   = flag.String("decode", "", "Hex UTF-8 bytes to decode into scalar values")
		encodeArg   = flag.String("encode", "", "Code points to encode (U+XXXX or hex, comma-separated)")
		utf16Hex    = flag.String("utf16", "", "Hex UTF-16 units (4 hex digits each) to convert to UTF-8")
		normalize   = flag.String("normalize", "", "Hex UTF-8 bytes to feed one unit at a time and re-emit")
		trace       = flag.Bool("trace", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *trace {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		convert.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var err error
	switch {
	case *decodeHex != "":
		err = runDecode(*decodeHex)
	case *encodeArg != "":
		err = runEncode(*encodeArg)
	case *utf16Hex != "":
		err = runUtf16(*utf16Hex)
	case *normalize != "":
		err = runNormalize(*normalize)
	default:
		fmt.Fprintln(os.Stderr, "Usage: uniconv -decode <hex bytes>")
		fmt.Fprintln(os.Stderr, "       uniconv -encode <U+XXXX,...>")
		fmt.Fprintln(os.Stderr, "       uniconv -utf16 <hex units>")
		fmt.Fprintln(os.Stderr, "       uniconv -normalize <hex bytes>")
		fmt.Fprintln(os.Stderr, "       uniconv -i  (interactive mode)")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseHexBytes(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(clean)
}

func runDecode(arg string) error {
	input, err := parseHexBytes(arg)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	var st convert.State
	for len(input) > 0 {
		var r rune
		n, err := convert.BytesToC32(&r, input, &st)
		switch {
		case err != nil:
			return err
		case n == convert.Incomplete:
			return fmt.Errorf("input ends mid-sequence (%d continuation bytes missing)", st.Expecting())
		case n == convert.Terminator:
			fmt.Println("U+0000 (terminator)")
			input = input[1:]
		default:
			fmt.Printf("U+%04X (%d bytes)\n", r, n)
			input = input[n:]
		}
	}
	return nil
}

func parseScalar(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse code point %q: %w", s, err)
	}
	return rune(v), nil
}

func runEncode(arg string) error {
	var st convert.State
	for _, field := range strings.Split(arg, ",") {
		r, err := parseScalar(field)
		if err != nil {
			return err
		}
		dst := make([]byte, convert.MaxBytes)
		n, err := convert.C32ToBytes(dst, r, &st)
		if err != nil {
			return err
		}
		if n == convert.Terminator {
			n = 1
		}
		fmt.Printf("U+%04X -> % X\n", r, dst[:n])
	}
	return nil
}

func parseUnits16(s string) ([]uint16, error) {
	raw, err := parseHexBytes(s)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("UTF-16 input needs an even number of hex bytes")
	}
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return units, nil
}

func runUtf16(arg string) error {
	units, err := parseUnits16(arg)
	if err != nil {
		return err
	}

	var st convert.State
	for _, u := range units {
		dst := make([]byte, convert.MaxBytes)
		n, err := convert.C16ToBytes(dst, u, &st)
		switch {
		case err != nil:
			return err
		case n == convert.Incomplete:
			fmt.Printf("0x%04X (awaiting low surrogate)\n", u)
		case n == convert.Terminator:
			fmt.Printf("0x%04X -> 00\n", u)
		default:
			fmt.Printf("0x%04X -> % X\n", u, dst[:n])
		}
	}
	if !convert.IsInitial(&st) {
		return fmt.Errorf("input ends with an unpaired high surrogate")
	}
	return nil
}

func runNormalize(arg string) error {
	input, err := parseHexBytes(arg)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	var st convert.State
	var out []byte
	for _, b := range input {
		dst := make([]byte, convert.MaxBytes)
		n, err := convert.C8ToBytes(dst, b, &st)
		switch {
		case err != nil:
			return err
		case n == convert.Incomplete:
			continue
		case n == convert.Terminator:
			out = append(out, 0)
		default:
			out = append(out, dst[:n]...)
		}
	}
	if !convert.IsInitial(&st) {
		return fmt.Errorf("input ends mid-sequence")
	}
	fmt.Printf("% X\n", out)
	return nil
}
