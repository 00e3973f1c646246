// Package cloud builds the OpenAI client shared by cloud transcription and
// the intent fallback.
package cloud

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"voxplorer/internal/config"
	"voxplorer/internal/errors"
	"voxplorer/internal/log"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/net/proxy"
)

// NewSocksClient returns an HTTP client that dials through a SOCKS5 proxy
func NewSocksClient(socksAddr string) (*http.Client, error) {
	dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, proxy.Direct)
	if err != nil {
		return nil, err
	}

	dial := func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialer.Dial(network, addr)
	}
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		dial = cd.DialContext
	}

	return &http.Client{
		Transport: &http.Transport{DialContext: dial},
		Timeout:   120 * time.Second,
	}, nil
}

// NewClient creates an OpenAI client from the voice.openai section of cfg.
// The API key is read from the environment variable the config names.
func NewClient(cfg *config.Config, opts ...option.RequestOption) (openai.Client, error) {
	oc := cfg.Voice.OpenAI
	apiKey := os.Getenv(oc.APIKeyEnv)
	if apiKey == "" {
		return openai.Client{}, errors.NewVoiceError("missing API key in $"+oc.APIKeyEnv, "init",
			errors.VoiceUnavailable, nil)
	}

	all := []option.RequestOption{option.WithAPIKey(apiKey)}
	if oc.Proxy != "" {
		httpClient, err := NewSocksClient(oc.Proxy)
		if err != nil {
			return openai.Client{}, errors.NewVoiceError("cannot use proxy "+oc.Proxy, "init",
				errors.VoiceUnavailable, err)
		}
		all = append(all, option.WithHTTPClient(httpClient))
		log.Debug("Using SOCKS proxy %s for cloud voice calls", oc.Proxy)
	}
	all = append(all, opts...)

	return openai.NewClient(all...), nil
}
