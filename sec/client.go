// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package sec

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidStatusCode = errors.New("invalid status code received")
	ErrNoUserAgent       = errors.New("sec.userAgent must identify the requester")
)

const companyFactsURL = "https://data.sec.gov/api/xbrl/companyfacts/CIK%s.json"

// Client fetches XBRL company facts from SEC EDGAR. EDGAR's fair-access
// policy requires a descriptive User-Agent and caps automated traffic at
// 10 requests per second.
type Client struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewClient creates an EDGAR client. userAgent must name the requester,
// e.g. "Jane Doe (jane@example.com)".
func NewClient(userAgent string, requestsPerSecond int) (*Client, error) {
	if userAgent == "" {
		return nil, ErrNoUserAgent
	}

	if requestsPerSecond <= 0 || requestsPerSecond > 10 {
		requestsPerSecond = 10
	}

	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept-Encoding", "gzip, deflate")

	return &Client{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// CompanyFacts fetches every XBRL fact EDGAR holds for the given CIK
func (secClient *Client) CompanyFacts(ctx context.Context, cik string) (*CompanyFacts, error) {
	if err := secClient.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(companyFactsURL, NormalizeCIK(cik))
	resp, err := secClient.client.R().SetContext(ctx).Get(url)
	if err != nil {
		log.Error().Err(err).Str("Url", url).Msg("resty returned an error when querying companyfacts")
		return nil, err
	}

	if resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatusCode, resp.StatusCode())
	}

	companyFacts := &CompanyFacts{}
	if err := json.Unmarshal(resp.Body(), companyFacts); err != nil {
		return nil, err
	}

	return companyFacts, nil
}

// NormalizeCIK left-pads a CIK to the 10 digits EDGAR URLs expect
func NormalizeCIK(cik string) string {
	cik = strings.TrimSpace(cik)
	if len(cik) >= 10 {
		return cik
	}
	return strings.Repeat("0", 10-len(cik)) + cik
}
