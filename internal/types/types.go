package types

import "time"

// LandingPage describes one generated asset as returned by the listing endpoint.
type LandingPage struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadedImage describes an image accepted by the upload gate. The path is the
// on-disk location handed to the content prompt; the image belongs to a single
// generation request and is never reused.
type UploadedImage struct {
	StoragePath string `json:"storagePath"`
	MimeType    string `json:"mimeType"`
	SizeBytes   int64  `json:"sizeBytes"`
}
