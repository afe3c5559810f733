package logic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/droverlabs/drover/internal/browser"
	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
	formatArticle  = "article"
)

type ContentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Extract page title and markup, optionally converted to markdown or
// readable article text
func NewContentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ContentLogic {
	return &ContentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ContentLogic) Content(req *types.ContentRequest) (*types.ContentResponse, error) {
	if req.Url == "" {
		return nil, errors.New("url is required")
	}
	waitFor, err := resolveWaitFor(req.WaitFor)
	if err != nil {
		return nil, err
	}
	format := req.Format
	if format == "" {
		format = formatHTML
	}
	switch format {
	case formatHTML, formatMarkdown, formatArticle:
	default:
		return nil, fmt.Errorf("invalid format %q (expected html, markdown, or article)", req.Format)
	}

	started := time.Now()
	content, err := l.svcCtx.Worker.GetPageContent(l.ctx, browser.ContentTask{
		URL:      req.Url,
		WaitFor:  waitFor,
		Selector: req.Selector,
	})
	recordTask(l.Logger, l.svcCtx, "content", req.Url, err, started)
	if err != nil {
		l.Errorf("Content error: %v", err)
		return &types.ContentResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: timestamp(),
			Url:       req.Url,
		}, nil
	}

	// The selector-not-found sentinel is returned as-is in every format.
	body := content.Content
	if !content.SelectorMissed {
		body, err = convertContent(body, format, req.Url)
		if err != nil {
			l.Errorf("Content conversion error: %v", err)
			return &types.ContentResponse{
				Success:   false,
				Error:     err.Error(),
				Timestamp: timestamp(),
				Url:       req.Url,
			}, nil
		}
	}

	return &types.ContentResponse{
		Success:   true,
		Content:   body,
		Title:     content.Title,
		Timestamp: timestamp(),
		Url:       req.Url,
	}, nil
}

func convertContent(html, format, pageURL string) (string, error) {
	switch format {
	case formatMarkdown:
		md, err := htmltomd.ConvertString(html)
		if err != nil {
			return "", fmt.Errorf("markdown conversion failed: %w", err)
		}
		return md, nil
	case formatArticle:
		parsed, _ := url.Parse(pageURL)
		article, err := readability.FromReader(strings.NewReader(html), parsed)
		if err != nil {
			return "", fmt.Errorf("article extraction failed: %w", err)
		}
		return article.TextContent, nil
	default:
		return html, nil
	}
}
