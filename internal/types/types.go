package types

type IndexResponse struct {
	Message      string `json:"message"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	AuthRequired bool   `json:"auth_required"`
}

type HealthResponse struct {
	Status                string `json:"status"`
	PlaywrightInitialized bool   `json:"playwright_initialized"`
	Timestamp             string `json:"timestamp"`
	Authenticated         bool   `json:"authenticated"`
}

type ScreenshotRequest struct {
	Url      string `json:"url"`
	FullPage *bool  `json:"full_page,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	WaitFor  string `json:"wait_for,omitempty"`
}

type ScreenshotResponse struct {
	Success     bool   `json:"success"`
	ImageBase64 string `json:"image_base64,omitempty"`
	Error       string `json:"error,omitempty"`
	Timestamp   string `json:"timestamp"`
	Url         string `json:"url"`
}

type ContentRequest struct {
	Url      string `json:"url"`
	WaitFor  string `json:"wait_for,omitempty"`
	Selector string `json:"selector,omitempty"`
	Format   string `json:"format,omitempty"`
}

type ContentResponse struct {
	Success   bool   `json:"success"`
	Content   string `json:"content,omitempty"`
	Title     string `json:"title,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
	Url       string `json:"url"`
}

type Action struct {
	Type     string `json:"type"`
	Selector string `json:"selector,omitempty"`
	Text     string `json:"text,omitempty"`
	Timeout  int    `json:"timeout,omitempty"`
}

type ActionsRequest struct {
	Url             string   `json:"url"`
	Actions         []Action `json:"actions"`
	ScreenshotAfter *bool    `json:"screenshot_after,omitempty"`
}

type ActionsResult struct {
	ActionsPerformed []string `json:"actions_performed"`
}

type ActionsResponse struct {
	Success          bool           `json:"success"`
	Result           *ActionsResult `json:"result,omitempty"`
	ScreenshotBase64 string         `json:"screenshot_base64,omitempty"`
	Error            string         `json:"error,omitempty"`
	Timestamp        string         `json:"timestamp"`
	Url              string         `json:"url"`
}

type TasksRequest struct {
	Limit int `form:"limit"`
}

type TaskRecord struct {
	Id         string `json:"id"`
	Kind       string `json:"kind"`
	Url        string `json:"url"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
}

type TasksResponse struct {
	Tasks []TaskRecord `json:"tasks"`
	Count int          `json:"count"`
}
