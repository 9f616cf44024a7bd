package intake

import (
	"fmt"
	"strconv"
)

// Shape adapters. The same logical list appears as a keyed object
// (review_1..review_5) in older captures and as an array
// (featured_reviews.items) in newer ones, and a single document can mix
// both conventions. Every adapter runs and the results are concatenated;
// there is no "detect the version then branch".

const keyedShapeMax = 5

// RawReview is one candidate review pulled from the document before
// materialization.
type RawReview struct {
	Platform string
	Author   string
	Rating   float64
	Text     string
	Date     string
	URL      string
}

// RawPhoto is one candidate gallery photo pulled from the document.
type RawPhoto struct {
	URL     string
	Caption string
}

// CollectReviews runs every review shape adapter over the document and
// concatenates the results.
func CollectReviews(doc Document) []RawReview {
	var out []RawReview
	out = append(out, keyedReviews(doc)...)
	out = append(out, arrayReviews(doc)...)
	return out
}

// CollectPhotos runs every photo shape adapter over the document and
// concatenates the results.
func CollectPhotos(doc Document) []RawPhoto {
	var out []RawPhoto
	out = append(out, keyedPhotos(doc)...)
	out = append(out, arrayPhotos(doc)...)
	return out
}

func keyedReviews(doc Document) []RawReview {
	var out []RawReview
	for _, parent := range []string{"reviews", "featured_reviews"} {
		obj, ok := doc.ObjectAt(parent)
		if !ok {
			continue
		}
		for i := 1; i <= keyedShapeMax; i++ {
			entry, ok := obj[fmt.Sprintf("review_%d", i)].(map[string]any)
			ok = ok && entry != nil
			if !ok {
				continue
			}
			if r, ok := reviewFromObject(entry); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

func arrayReviews(doc Document) []RawReview {
	var out []RawReview
	arr, ok := doc.ArrayAt("featured_reviews.items")
	if !ok {
		return nil
	}
	for _, item := range arr {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if r, ok := reviewFromObject(entry); ok {
			out = append(out, r)
		}
	}
	return out
}

func reviewFromObject(obj map[string]any) (RawReview, bool) {
	r := RawReview{
		Platform: cleanField(obj, "platform", "source"),
		Author:   cleanField(obj, "reviewer_name", "author", "name"),
		Text:     cleanField(obj, "text", "review_text", "quote"),
		Date:     cleanField(obj, "date", "review_date"),
		URL:      cleanField(obj, "url", "link"),
		Rating:   numberField(obj, "rating", "stars"),
	}
	// a review with neither text nor author is noise, not data
	if r.Text == "" && r.Author == "" {
		return RawReview{}, false
	}
	return r, true
}

func keyedPhotos(doc Document) []RawPhoto {
	var out []RawPhoto
	for _, parent := range []string{"photo_gallery", "images"} {
		obj, ok := doc.ObjectAt(parent)
		if !ok {
			continue
		}
		for i := 1; i <= keyedShapeMax; i++ {
			if p, ok := photoFromValue(obj[fmt.Sprintf("image_%d", i)]); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

func arrayPhotos(doc Document) []RawPhoto {
	var out []RawPhoto
	arr, ok := doc.ArrayAt("photo_gallery.images")
	if !ok {
		return nil
	}
	for _, item := range arr {
		if p, ok := photoFromValue(item); ok {
			out = append(out, p)
		}
	}
	return out
}

// photoFromValue accepts both bare URL strings and {url, alt} objects.
func photoFromValue(v any) (RawPhoto, bool) {
	switch node := v.(type) {
	case string:
		if url, ok := CleanValue(node); ok {
			return RawPhoto{URL: url}, true
		}
	case map[string]any:
		url := cleanField(node, "url", "src", "image_url")
		if url == "" {
			return RawPhoto{}, false
		}
		return RawPhoto{
			URL:     url,
			Caption: cleanField(node, "caption", "alt"),
		}, true
	}
	return RawPhoto{}, false
}

func cleanField(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		raw, ok := obj[k].(string)
		if !ok {
			continue
		}
		if v, ok := CleanValue(raw); ok {
			return v
		}
	}
	return ""
}

func numberField(obj map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch n := obj[k].(type) {
		case float64:
			return n
		case string:
			if v, ok := CleanValue(n); ok {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					return f
				}
			}
		}
	}
	return 0
}
