package bing

// Typed views of the service's OData style envelope. Decode a Result into
// one of these with Result.Decode.

type WebResponse struct {
	D struct {
		Results []WebResult `json:"results"`
		Next    string      `json:"__next,omitempty"`
	} `json:"d"`
}

type WebResult struct {
	Metadata    Metadata `json:"__metadata"`
	ID          string   `json:"ID"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	DisplayURL  string   `json:"DisplayUrl"`
	URL         string   `json:"Url"`
}

type ImageResponse struct {
	D struct {
		Results []ImageResult `json:"results"`
		Next    string        `json:"__next,omitempty"`
	} `json:"d"`
}

type ImageResult struct {
	Metadata    Metadata  `json:"__metadata"`
	ID          string    `json:"ID"`
	Title       string    `json:"Title"`
	MediaURL    string    `json:"MediaUrl"`
	SourceURL   string    `json:"SourceUrl"`
	DisplayURL  string    `json:"DisplayUrl"`
	Width       string    `json:"Width"`
	Height      string    `json:"Height"`
	FileSize    string    `json:"FileSize"`
	ContentType string    `json:"ContentType"`
	Thumbnail   Thumbnail `json:"Thumbnail"`
}

type Thumbnail struct {
	Metadata    Metadata `json:"__metadata"`
	MediaURL    string   `json:"MediaUrl"`
	ContentType string   `json:"ContentType"`
	Width       string   `json:"Width"`
	Height      string   `json:"Height"`
	FileSize    string   `json:"FileSize"`
}

type Metadata struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}
