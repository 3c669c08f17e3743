package engine

// Buckets 四個互斥且涵蓋全部食譜的分類桶
type Buckets struct {
	Craftable []RecipeCraftability
	NearMiss  []RecipeCraftability
	Partial   []RecipeCraftability
	MajorGap  []RecipeCraftability
}

// Total 分桶前的食譜總數
func (b *Buckets) Total() int {
	return len(b.Craftable) + len(b.NearMiss) + len(b.Partial) + len(b.MajorGap)
}

// Aggregate 線性分桶；每個食譜恰好落入一桶
func Aggregate(classifications []RecipeCraftability) *Buckets {
	b := &Buckets{
		Craftable: make([]RecipeCraftability, 0),
		NearMiss:  make([]RecipeCraftability, 0),
		Partial:   make([]RecipeCraftability, 0),
		MajorGap:  make([]RecipeCraftability, 0),
	}
	for _, c := range classifications {
		switch c.Bucket {
		case BucketCraftable:
			b.Craftable = append(b.Craftable, c)
		case BucketNearMiss:
			b.NearMiss = append(b.NearMiss, c)
		case BucketPartial:
			b.Partial = append(b.Partial, c)
		default:
			b.MajorGap = append(b.MajorGap, c)
		}
	}
	return b
}
