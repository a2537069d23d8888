package openmeteo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"petcareplus/internal/platform/httpclient"
	weatherport "petcareplus/internal/ports/weather"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client consulta condiciones actuales en Open-Meteo.
// Una llamada por request, timeout default del httpclient, sin retry.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

func New() *Client {
	return &Client{
		http:    httpclient.New(httpclient.DefaultTimeout),
		baseURL: defaultBaseURL,
	}
}

// NewWithTransport inyecta transport y base URL (para tests).
func NewWithTransport(tr http.RoundTripper, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http:    httpclient.NewWithTransport(httpclient.DefaultTimeout, tr),
		baseURL: baseURL,
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (weatherport.Observation, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")

	var resp forecastResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"?"+q.Encode(), &resp); err != nil {
		return weatherport.Observation{}, err
	}

	// Respuesta 2xx pero sin bloque current_weather => upstream inservible.
	if resp.CurrentWeather == nil {
		return weatherport.Observation{}, weatherport.ErrNoCurrentWeather
	}

	return weatherport.Observation{
		TemperatureC: resp.CurrentWeather.Temperature,
		Windspeed:    resp.CurrentWeather.Windspeed,
	}, nil
}
