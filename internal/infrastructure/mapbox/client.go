package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

const providerName = "mapbox"

var errMatrixCode = errors.New("mapbox API returned non-OK code")

// apiError - ошибка HTTP уровня от Mapbox
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("mapbox API error: status %d", e.StatusCode)
}

func (e *apiError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	maxPoints   int
	logger      *zap.Logger
}

// NewMapboxClient создает провайдер маршрутов поверх Mapbox Matrix API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.RoutingProvider {
	maxPoints := cfg.MaxMatrixPoints
	if maxPoints < 2 {
		maxPoints = 25
	}
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.Profile,
		maxPoints:   maxPoints,
		logger:      logger,
	}
}

func (c *client) Name() string {
	return providerName
}

// RouteLegs requests the matrix for consecutive routeable stops. Sequences
// longer than the Mapbox point limit are split into windows that share their
// boundary stop.
func (c *client) RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	if c.accessToken == "" {
		return domain.ProviderUnavailable(providerName, "Mapbox access token is not configured")
	}

	points := make([]domain.Coordinate, 0, len(req.RouteableSequence))
	for _, item := range req.RouteableSequence {
		if item.Lat == nil || item.Lng == nil {
			return domain.ProviderFailure(providerName, fmt.Sprintf("item %s has no coordinates", item.ItemID), false)
		}
		points = append(points, domain.Coordinate{Lat: *item.Lat, Lon: *item.Lng})
	}

	legs := make([]domain.ProviderLegMetric, 0, len(req.Legs))
	for start := 0; start < len(points)-1; start += c.maxPoints - 1 {
		end := start + c.maxPoints
		if end > len(points) {
			end = len(points)
		}

		matrix, err := c.GetChainMatrix(ctx, points[start:end])
		if err != nil {
			var apiErr *apiError
			if errors.As(err, &apiErr) {
				return domain.ProviderFailure(providerName, apiErr.Error(), apiErr.retryable())
			}
			if errors.Is(err, errMatrixCode) {
				return domain.ProviderFailure(providerName, err.Error(), false)
			}
			return domain.ProviderFailure(providerName, "Mapbox request failed: "+err.Error(), true)
		}

		for i := 0; i < end-start-1; i++ {
			legs = append(legs, domain.ProviderLegMetric{
				Index:     float64(start + i),
				DistanceM: cell(matrix.Distances, i),
				DurationS: cell(matrix.Durations, i),
			})
		}
	}

	return domain.ProviderSuccess(providerName, legs)
}

// GetChainMatrix возвращает матрицу для цепочки точек: источники - все точки
// кроме последней, назначения - все кроме первой, так что ячейка [i][i] это
// участок от точки i до точки i+1.
func (c *client) GetChainMatrix(ctx context.Context, points []domain.Coordinate) (*domain.MatrixResponse, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("at least two points are required")
	}
	if len(points) > c.maxPoints {
		return nil, fmt.Errorf("total coordinates exceed Mapbox limit of %d points", c.maxPoints)
	}

	coordinates := make([]string, len(points))
	sources := make([]string, len(points)-1)
	destinations := make([]string, len(points)-1)
	for i, p := range points {
		coordinates[i] = fmt.Sprintf("%f,%f", p.Lon, p.Lat)
		if i < len(points)-1 {
			sources[i] = strconv.Itoa(i)
		}
		if i > 0 {
			destinations[i-1] = strconv.Itoa(i)
		}
	}

	query := url.Values{}
	query.Set("sources", strings.Join(sources, ";"))
	query.Set("destinations", strings.Join(destinations, ";"))
	query.Set("annotations", "distance,duration")
	query.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/directions-matrix/v1/%s/%s?%s",
		c.baseURL,
		c.profile,
		strings.Join(coordinates, ";"),
		query.Encode(),
	)

	c.logger.Debug("Calling Mapbox Matrix API",
		zap.String("profile", c.profile),
		zap.Int("points", len(points)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, &apiError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var matrixResp domain.MatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrixResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if matrixResp.Code != "Ok" {
		c.logger.Error("Mapbox API returned non-OK code",
			zap.String("code", matrixResp.Code),
			zap.String("message", matrixResp.Message))
		return nil, fmt.Errorf("%w: %s", errMatrixCode, matrixResp.Code)
	}

	return &matrixResp, nil
}

// cell reads the diagonal entry i. Missing or null cells become NaN so the
// metric validator rejects them.
func cell(rows [][]*float64, i int) float64 {
	if i >= len(rows) || i >= len(rows[i]) || rows[i][i] == nil {
		return math.NaN()
	}
	return *rows[i][i]
}
