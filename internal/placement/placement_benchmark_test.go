package placement

import (
	"testing"

	"blockdrop/internal/grid"
	"blockdrop/internal/scene"
)

func BenchmarkPlaceNew(b *testing.B) {
	params, _ := grid.NewParams(1, 0.001)
	c := NewController(scene.NewSceneState(), params)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.PlaceNew(float32(i%32), float32((i*7)%32))
	}
}

func BenchmarkNextStackHeight(b *testing.B) {
	s := scene.NewSceneState()
	params, _ := grid.NewParams(1, 0.001)
	for i := 0; i < 1024; i++ {
		s.Append(float32(i%32), 0.5, float32(i/32))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = params.NextStackHeight(s, float32(i%32), float32((i*3)%32))
	}
}
