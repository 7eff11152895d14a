package htm

import (
	"fmt"
	"sort"

	"github.com/htm-community/spatialpooler/utils"
)

//Returns multiples used to convert an n-dimensional
//coordinate to a flat row major index
func dimensionMultiples(dimensions []int) []int {
	holder := make([]int, len(dimensions))
	holder[len(dimensions)-1] = 1
	for i := len(dimensions) - 2; i >= 0; i-- {
		holder[i] = holder[i+1] * dimensions[i+1]
	}
	return holder
}

//Converts a flat row major index to a coordinate in
//the specified dimensions
func ComputeCoordinates(index int, dimensions []int) []int {
	if index < 0 || index >= utils.ProdInt(dimensions) {
		panic(fmt.Sprintf("Index %v out of bounds for dimensions %v", index, dimensions))
	}
	coords := make([]int, len(dimensions))
	for i := len(dimensions) - 1; i >= 0; i-- {
		coords[i] = index % dimensions[i]
		index /= dimensions[i]
	}
	return coords
}

//Converts a coordinate in the specified dimensions to
//a flat row major index
func ComputeIndex(coordinates []int, dimensions []int) int {
	if len(coordinates) != len(dimensions) {
		panic("Coordinate and dimension ranks differ")
	}
	for i, coord := range coordinates {
		if coord < 0 || coord >= dimensions[i] {
			panic(fmt.Sprintf("Coordinate %v out of bounds for dimensions %v", coordinates, dimensions))
		}
	}
	return utils.DotInt(coordinates, dimensionMultiples(dimensions))
}

/*
 Returns the flat indices of the neighbors of the specified index, within
the given radius along every dimension. The center index is excluded. With
wrapAround on, each component is reduced modulo its dimension, otherwise
components falling outside the dimension are clipped away. Result is sorted
and duplicate free.
*/
func NeighborsND(index int, radius int, dimensions []int, wrapAround bool) []int {
	center := ComputeCoordinates(index, dimensions)

	ranges := make([][]int, len(dimensions))
	for i, dim := range dimensions {
		var vals []int
		for v := center[i] - radius; v <= center[i]+radius; v++ {
			candidate := v
			if wrapAround {
				candidate = utils.Mod(v, dim)
			} else if v < 0 || v >= dim {
				continue
			}
			if !utils.ContainsInt(candidate, vals) {
				vals = append(vals, candidate)
			}
		}
		sort.Ints(vals)
		ranges[i] = vals
	}

	var result []int
	for _, coord := range utils.CartProductInt(ranges) {
		idx := ComputeIndex(coord, dimensions)
		if idx != index {
			result = append(result, idx)
		}
	}
	sort.Ints(result)
	return result
}
