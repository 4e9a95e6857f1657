package request

// AssetUploadRequest asks for a pre-signed upload slot for a course asset.
//
// Kind selects the content-type allowlist and size ceiling (video,
// thumbnail, attachment); EntityID is the course/lesson the asset belongs
// to and becomes part of the object key.

type AssetUploadRequest struct {
	Kind        string `json:"kind"`
	EntityID    string `json:"entity_id"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// AssetDeleteRequest deletes an asset by the public URL previously handed
// out with the upload slot.

type AssetDeleteRequest struct {
	URL string `json:"url"`
}
