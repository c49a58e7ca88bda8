package core

import "testing"

func BenchmarkAddEdge(b *testing.B) {
	g := NewGraph()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(uint32(i), uint32(i+1))
	}
}

func BenchmarkHasEdge(b *testing.B) {
	g := NewGraph()
	for v := uint32(0); v < 1<<12; v++ {
		_ = g.AddEdge(v, v+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(uint32(i)&0xfff, (uint32(i)&0xfff)+1)
	}
}

func BenchmarkDeleteNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := NewGraph()
		for v := uint32(0); v < 64; v++ {
			_ = g.AddEdge(0, v+1)
		}
		b.StartTimer()
		_ = g.DeleteNode(0)
	}
}
