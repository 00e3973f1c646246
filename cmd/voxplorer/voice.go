package main

import (
	"context"
	"fmt"
	"strings"

	"voxplorer/internal/errors"
	"voxplorer/internal/voice"
	"voxplorer/internal/voice/audio"
	"voxplorer/internal/voice/engine"
	"voxplorer/internal/voice/tts"

	"github.com/spf13/cobra"
)

func newListenCmd(o *rootOptions) *cobra.Command {
	var (
		file string
		text string
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Recognise one voice command and print it",
		Long: `Capture one utterance from the microphone, or decode it from --file
(wav, mp3 or ogg), transcribe it and print the command it maps to.
--text skips audio and interprets the given sentence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []engine.Option
			if file != "" {
				opts = append(opts, engine.WithRecorder(audio.FileRecorder{
					Path:       file,
					MaxSamples: o.cfg.Voice.MaxUtteranceSeconds * 16000,
				}))
			}
			eng := engine.New(o.cfg, opts...)
			defer eng.Close()

			ctx := cmd.Context()
			if text != "" {
				c, err := eng.Dispatcher.Interpret(ctx, text)
				return printCommand(cmd, text, c, err)
			}
			if !eng.Available() {
				return errors.ErrVoiceUnavailable
			}

			type result struct {
				cmd voice.Command
				err error
			}
			done := make(chan result, 1)
			if err := eng.Dispatcher.Start(ctx, func(c voice.Command, err error) {
				done <- result{c, err}
			}); err != nil {
				return err
			}
			r := <-done
			return printCommand(cmd, r.cmd.Text, r.cmd, r.err)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "audio file to use instead of the microphone")
	cmd.Flags().StringVar(&text, "text", "", "interpret this sentence instead of listening")
	return cmd
}

func printCommand(cmd *cobra.Command, heard string, c voice.Command, err error) error {
	out := cmd.OutOrStdout()
	if heard != "" {
		fmt.Fprintf(out, "Heard: %s\n", heard)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Fprintln(out, voice.Feedback(err))
		return err
	}
	fmt.Fprintf(out, "Command: %s\n", c)
	return nil
}

func newSayCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text>",
		Short: "Speak text with the configured voice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			speaker, closer := tts.New(o.cfg)
			defer closer.Close()
			if ls, ok := speaker.(*tts.LogSpeaker); ok {
				ls.Out = cmd.OutOrStdout()
			}
			return speaker.Speak(cmd.Context(), strings.Join(args, " "))
		},
	}
}
