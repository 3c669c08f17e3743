package engine

import "testing"

func TestAggregatePartition(t *testing.T) {
	results := []RecipeCraftability{
		{RecipeID: "a", Bucket: BucketCraftable},
		{RecipeID: "b", Bucket: BucketNearMiss},
		{RecipeID: "c", Bucket: BucketNearMiss},
		{RecipeID: "d", Bucket: BucketPartial},
		{RecipeID: "e", Bucket: BucketMajorGap},
	}
	b := Aggregate(results)

	if got := b.Total(); got != len(results) {
		t.Fatalf("Total() = %d, want %d", got, len(results))
	}
	if len(b.Craftable) != 1 || len(b.NearMiss) != 2 || len(b.Partial) != 1 || len(b.MajorGap) != 1 {
		t.Errorf("bucket sizes = %d/%d/%d/%d, want 1/2/1/1",
			len(b.Craftable), len(b.NearMiss), len(b.Partial), len(b.MajorGap))
	}

	// 每份食譜恰好落在一個分組
	seen := map[string]int{}
	for _, group := range [][]RecipeCraftability{b.Craftable, b.NearMiss, b.Partial, b.MajorGap} {
		for _, r := range group {
			seen[r.RecipeID]++
		}
	}
	for _, r := range results {
		if seen[r.RecipeID] != 1 {
			t.Errorf("recipe %s appears %d times across buckets, want exactly 1", r.RecipeID, seen[r.RecipeID])
		}
	}
}

func TestAggregatePreservesInputOrder(t *testing.T) {
	results := []RecipeCraftability{
		{RecipeID: "x", Bucket: BucketNearMiss},
		{RecipeID: "y", Bucket: BucketCraftable},
		{RecipeID: "z", Bucket: BucketNearMiss},
	}
	b := Aggregate(results)
	if b.NearMiss[0].RecipeID != "x" || b.NearMiss[1].RecipeID != "z" {
		t.Errorf("near-miss order = %s,%s, want x,z", b.NearMiss[0].RecipeID, b.NearMiss[1].RecipeID)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	b := Aggregate(nil)
	if b.Total() != 0 {
		t.Fatalf("Total() = %d, want 0", b.Total())
	}
	if b.Craftable == nil || b.NearMiss == nil || b.Partial == nil || b.MajorGap == nil {
		t.Error("bucket slices must be non-nil for stable JSON output")
	}
}
