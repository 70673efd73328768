package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	qrterminal "github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/qrstudio/qr-studio/internal/encoder"
	"github.com/qrstudio/qr-studio/internal/export"
	"github.com/qrstudio/qr-studio/internal/generator"
	"github.com/qrstudio/qr-studio/internal/model"
)

const (
	flagOutput     = "output"
	flagForeground = "fg"
	flagBackground = "bg"
	flagSize       = "size"
	flagBackend    = "backend"
	flagLevel      = "level"
	flagForce      = "force"
	flagCopy       = "copy"
)

// errRefused is returned when the target exists and --force was not given.
var errRefused = errors.New("file already exists, use --force to overwrite")

func encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "renders TEXT as a QR code PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}

	cmd.Flags().StringP(flagOutput, "o", "", "Output file (default QRCode_<timestamp>.png)")
	cmd.Flags().String(flagForeground, "#000000", "Module color as #rrggbb")
	cmd.Flags().String(flagBackground, "#ffffff", "Background color as #rrggbb")
	cmd.Flags().Int(flagSize, generator.DefaultSize, "Image edge length in pixels")
	cmd.Flags().String(flagBackend, encoder.DefaultBackend, "QR library: "+strings.Join(encoder.Backends(), ", "))
	cmd.Flags().String(flagLevel, string(encoder.DefaultLevel), "Error correction level (L, M, Q, H)")
	cmd.Flags().Bool(flagForce, false, "Overwrite an existing file")
	cmd.Flags().Bool(flagCopy, false, "Also copy the image to the clipboard")
	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	output, _ := flags.GetString(flagOutput)
	fgHex, _ := flags.GetString(flagForeground)
	bgHex, _ := flags.GetString(flagBackground)
	size, _ := flags.GetInt(flagSize)
	backend, _ := flags.GetString(flagBackend)
	levelName, _ := flags.GetString(flagLevel)
	force, _ := flags.GetBool(flagForce)
	copyImage, _ := flags.GetBool(flagCopy)

	fg, err := parseHexColor(fgHex)
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", flagForeground, err)
	}
	bg, err := parseHexColor(bgHex)
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", flagBackground, err)
	}
	if size < generator.MinSize || size > generator.MaxSize {
		return fmt.Errorf("invalid --%s: must be between %d and %d", flagSize, generator.MinSize, generator.MaxSize)
	}
	level, err := encoder.ParseLevel(levelName)
	if err != nil {
		return err
	}
	enc, err := encoder.New(backend, level)
	if err != nil {
		return err
	}

	svc := generator.NewService(enc, export.NewSystemClipboard(), generator.Options{
		Size:      size,
		Directory: filepath.Dir(output),
	})
	svc.SetForeground(fg)
	svc.SetBackground(bg)
	svc.SetText(args[0])
	svc.Generate()
	if err := statusError(svc.State().Status); err != nil {
		return err
	}

	if copyImage {
		svc.Copy()
		printStatus(cmd.OutOrStdout(), svc.State().Status)
	}

	if output == "" {
		dir, name, _ := svc.SuggestSave()
		output = filepath.Join(dir, name)
		if dir == "" {
			output = name
		}
	}

	refused := false
	svc.SaveAs(output, func(path string, answer func(bool)) {
		refused = !force
		answer(force)
	})
	if refused {
		return errRefused
	}

	status := svc.State().Status
	if err := statusError(status); err != nil {
		return err
	}
	printStatus(cmd.OutOrStdout(), status)
	return nil
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show TEXT",
		Short: "prints TEXT as a QR code in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return encoder.ErrEmptyText
			}
			qrterminal.GenerateHalfBlock(args[0], qrterminal.L, cmd.OutOrStdout())
			return nil
		},
	}
}

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "prints the text stored in a QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer file.Close()

			img, _, err := image.Decode(file)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			text, err := encoder.Decode(img)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "prints the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrgen %s\n", version)
		},
	}
}

// statusError turns a warning or error status into an error.
func statusError(status model.Status) error {
	if !status.Severity.IsProblem() {
		return nil
	}
	if status.Detail != "" {
		return fmt.Errorf("%s: %s", statusText(status.Key), status.Detail)
	}
	return errors.New(statusText(status.Key))
}
