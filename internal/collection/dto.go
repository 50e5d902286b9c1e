package collection

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
)

// collectionDTO is the stored shape of mediaData
type collectionDTO struct {
	Books  []entryDTO `json:"books"`
	Movies []entryDTO `json:"movies"`
}

// entryDTO is the stored shape of one entry. Every field is text.
type entryDTO struct {
	Title   text    `json:"title"`
	Author  text    `json:"author"`
	Year    textInt `json:"year"`
	Comment text    `json:"comment"`
	Rating  textInt `json:"rating"`
}

// text decodes any JSON scalar as a string; null and non-scalars become "".
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*t = text(v)
	case float64:
		*t = text(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*t = text(strconv.FormatBool(v))
	default:
		*t = ""
	}
	return nil
}

// textInt is written as a decimal string ("" when zero) and read from either a
// string or a number. Anything that is not an integral number reads as zero.
type textInt int

func (n textInt) MarshalJSON() ([]byte, error) {
	if n == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(strconv.Itoa(int(n)))
}

func (n *textInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*n = textInt(ParseNumber(v))
	case float64:
		*n = textInt(integral(v))
	default:
		*n = 0
	}
	return nil
}

// ParseNumber coerces form or stored text to an int. Surrounding space is
// ignored; empty, non-numeric or fractional input gives 0.
func ParseNumber(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return integral(f)
}

func integral(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// FormatNumber renders an optional number for a form field ("" when zero)
func FormatNumber(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func toDTO(e domain.Entry) entryDTO {
	return entryDTO{
		Title:   text(e.Title),
		Author:  text(e.Creator),
		Year:    textInt(e.Year),
		Comment: text(e.Comment),
		Rating:  textInt(e.Rating),
	}
}

func fromDTO(d entryDTO) domain.Entry {
	return domain.Entry{
		Title:   string(d.Title),
		Creator: string(d.Author),
		Year:    int(d.Year),
		Comment: string(d.Comment),
		Rating:  int(d.Rating),
	}
}

func toDTOs(entries []domain.Entry) []entryDTO {
	out := make([]entryDTO, len(entries))
	for i, e := range entries {
		out[i] = toDTO(e)
	}
	return out
}

func fromDTOs(dtos []entryDTO) []domain.Entry {
	out := make([]domain.Entry, len(dtos))
	for i, d := range dtos {
		out[i] = fromDTO(d)
	}
	return out
}

// Encode serializes a collection to the mediaData format
func Encode(c domain.Collection) (string, error) {
	data, err := json.Marshal(collectionDTO{
		Books:  toDTOs(c.Books),
		Movies: toDTOs(c.Movies),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses the mediaData format. Missing or null lists decode as empty.
func Decode(raw string) (domain.Collection, error) {
	var dto collectionDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return domain.EmptyCollection(), fmt.Errorf("%w: %v", domain.ErrStorageDecode, err)
	}
	return domain.Collection{
		Books:  fromDTOs(dto.Books),
		Movies: fromDTOs(dto.Movies),
	}, nil
}
