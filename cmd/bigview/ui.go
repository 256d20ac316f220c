// This file is part of bignum.
//
// bignum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bignum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bignum.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/bignum/bigint"
	"github.com/jetsetilly/bignum/logger"
)

// calculatorState holds the two operand text fields and the result of
// the last operation performed, mirroring the small per-window state
// structs the teacher's win_*.go files keep (e.g. win_control.go),
// scaled down to this tool's one window.
type calculatorState struct {
	lhsText string
	rhsText string

	result    *bigint.BigInt
	resultErr string

	lastCompare int
	dumpPath    string
}

func newCalculatorState() *calculatorState {
	return &calculatorState{lhsText: "12345", rhsText: "67890"}
}

func (s *calculatorState) parseOperands() (a, b *bigint.BigInt, ok bool) {
	a, err := bigint.Parse(s.lhsText)
	if err != nil {
		s.resultErr = err.Error()
		return nil, nil, false
	}
	b, err = bigint.Parse(s.rhsText)
	if err != nil {
		s.resultErr = err.Error()
		return nil, nil, false
	}
	s.resultErr = ""
	return a, b, true
}

func (s *calculatorState) draw() {
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 520, Y: 360}, imgui.ConditionFirstUseEver)
	imgui.BeginV("bigview", nil, 0)
	defer imgui.End()

	imgui.Text("left operand")
	imgui.InputText("##lhs", &s.lhsText)

	imgui.Text("right operand")
	imgui.InputText("##rhs", &s.rhsText)

	imgui.Spacing()

	if imgui.Button("Add") {
		if a, b, ok := s.parseOperands(); ok {
			s.result = bigint.Add(a, b)
			logger.Log("bigview", "computed add")
		}
	}
	imgui.SameLine()
	if imgui.Button("Sub") {
		if a, b, ok := s.parseOperands(); ok {
			s.result = bigint.Sub(a, b)
			logger.Log("bigview", "computed sub")
		}
	}
	imgui.SameLine()
	if imgui.Button("Mul") {
		if a, b, ok := s.parseOperands(); ok {
			s.result = bigint.Mul(a, b)
			logger.Log("bigview", "computed mul")
		}
	}
	imgui.SameLine()
	if imgui.Button("Compare") {
		if a, b, ok := s.parseOperands(); ok {
			s.resultErr = ""
			s.result = nil
			imgui.OpenPopup("compare result")
			s.lastCompare = bigint.Compare(a, b)
		}
	}

	imgui.Spacing()

	if s.resultErr != "" {
		imgui.TextColored(imgui.Vec4{X: 1, Y: 0.4, Z: 0.4, W: 1}, s.resultErr)
	} else if s.result != nil {
		imgui.Text("decimal  " + s.result.String())
		imgui.Text("hex      " + s.result.StringHex(true, true, true, true))
		imgui.Text("binary   " + s.result.StringBin(true, true, true))
	}

	if imgui.BeginPopupModalV("compare result", nil, imgui.WindowFlagsAlwaysAutoResize) {
		switch {
		case s.lastCompare < 0:
			imgui.Text("left < right")
		case s.lastCompare > 0:
			imgui.Text("left > right")
		default:
			imgui.Text("left == right")
		}
		if imgui.Button("close") {
			imgui.CloseCurrentPopup()
		}
		imgui.EndPopup()
	}

	imgui.Spacing()
	imgui.Separator()

	if imgui.Button("Dump struct graph (memviz)") && s.result != nil {
		path, err := dumpStructGraph(s.result)
		if err != nil {
			logger.Log("bigview", err.Error())
			s.dumpPath = ""
		} else {
			s.dumpPath = path
		}
	}
	if s.dumpPath != "" {
		imgui.Text("wrote " + s.dumpPath)
	}
}
