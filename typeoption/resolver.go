package typeoption

import (
	"columncalc/core"
)

var extractorTable = map[core.FieldType]core.NumericExtractor{
	core.Number:         NumberExtractor{},
	core.RichText:       TextExtractor{},
	core.URL:            TextExtractor{},
	core.Checkbox:       CheckboxExtractor{},
	core.DateTime:       TimestampExtractor{},
	core.LastEditedTime: TimestampExtractor{},
	core.CreatedTime:    TimestampExtractor{},
}

// Resolver picks the extractor for a field from its declared type. Types
// without a numeric reading (selects, checklists, relations, unknown codes)
// resolve to core.RejectAll.
type Resolver struct {
	cache *CellDataCache
}

type Option func(*Resolver)

func WithCellDataCache(cache *CellDataCache) Option {
	return func(r *Resolver) {
		r.cache = cache
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func ExtractorForType(fieldType core.FieldType) core.NumericExtractor {
	extractor, ok := extractorTable[fieldType]
	if !ok {
		return core.RejectAll
	}
	return extractor
}

func (r *Resolver) Resolve(field *core.Field) core.NumericExtractor {
	extractor := ExtractorForType(field.Type)
	if extractor == core.RejectAll || r.cache == nil {
		return extractor
	}
	return r.cache.Wrap(field, extractor)
}
