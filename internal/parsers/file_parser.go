package parsers

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/shared/svcerrors"
)

const (
	eventTypeVideoPlay    = "video_play"
	eventTypeAdImpression = "ad_impression"
)

//go:generate mockgen -source=file_parser.go -destination=./mocks/file_parser_mock.go -package=mocks
type FileParser interface {
	// Parse reads one access-log file line by line and returns the usage
	// totals extracted from it. The first bad line or read failure aborts
	// the whole file; no partial aggregate is returned alongside an error.
	Parse(ctx context.Context, path string) (models.UsageAggregate, error)
}

type fileParser struct{}

func NewFileParser() FileParser {
	return &fileParser{}
}

func (p *fileParser) Parse(ctx context.Context, path string) (models.UsageAggregate, error) {
	file, err := os.Open(path)
	if err != nil {
		svcErr := errFileIOFailed(path, err)
		metricFilesParsedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	defer file.Close()

	usage, err := p.parseLines(ctx, path, bufio.NewReader(file))
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricFilesParsedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	metricFilesParsedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return usage, nil
}

// parseLines streams reader line by line into a fresh aggregate. Lines pass
// through a fixed-size buffer, so memory use does not grow with file size.
func (p *fileParser) parseLines(ctx context.Context, path string, reader *bufio.Reader) (models.UsageAggregate, error) {
	usage := models.NewUsageAggregate()

	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errFileIOFailed(path, err)
		}
		if line == "" && err == io.EOF {
			break
		}

		if lineErr := p.parseLine(usage, path, lineNo, line); lineErr != nil {
			return nil, lineErr
		}
		metricLinesParsedTotal.Inc()

		if err == io.EOF {
			// Final line without a trailing newline
			break
		}
	}

	return usage, nil
}

func (p *fileParser) parseLine(usage models.UsageAggregate, path string, lineNo int, raw string) error {
	line := trimLineEnding(raw)

	query, ok := QueryString(line)
	if !ok {
		return errMissingQueryString(path, lineNo, line)
	}

	rawOwner, ok := ParamValue(query, ParamOwner)
	if !ok {
		return errMissingOwner(path, lineNo, line)
	}
	ownerID, err := strconv.ParseUint(rawOwner, 10, 32)
	if err != nil {
		return errOwnerNotNumeric(path, lineNo, rawOwner, err)
	}

	// Every well-formed line surfaces its owner, even when it carries no
	// usage events.
	counters := usage.Owner(uint32(ownerID))

	if err := p.recordEvent(query, ParamVideoID, eventTypeVideoPlay, counters.AddVideoPlays, path, lineNo); err != nil {
		return err
	}
	return p.recordEvent(query, ParamAdImpressionID, eventTypeAdImpression, counters.AddAdImpressions, path, lineNo)
}

// recordEvent increments the counter behind add by one when the event key is
// present on the line. The value must be numeric but only proves the line is
// well formed; entity ids are not collected.
func (p *fileParser) recordEvent(query string, key ParamKey, eventType string, add func(uint32) (uint32, error), path string, lineNo int) error {
	value, ok := ParamValue(query, key)
	if !ok {
		return nil
	}
	if _, err := strconv.ParseUint(value, 10, 32); err != nil {
		return errEventValueNotNumeric(path, lineNo, key, value, err)
	}
	if _, err := add(1); err != nil {
		return errCounterOverflow(path, lineNo, eventType, err)
	}

	metricUsageEventsTotal.WithLabelValues(eventType).Inc()
	return nil
}

// trimLineEnding strips one trailing LF, CRLF, or bare CR.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
