package view

import (
	"strings"

	"github.com/palemoky/doudizhu-tally/internal/ui/common"
	"github.com/palemoky/doudizhu-tally/internal/ui/model"
)

// RenderUsage renders the gesture reference shown with the full help.
func RenderUsage(longPressClear bool) string {
	var sb strings.Builder

	sb.WriteString("【记牌】\n")
	sb.WriteString("• 单击格子：记一张\n")
	sb.WriteString("• 双击格子：记两张（只剩一张时记一张）\n")
	if longPressClear {
		sb.WriteString("• 右键格子 / X：清空该格\n")
	}
	sb.WriteString("\n【重置】\n")
	sb.WriteString("• 单击重置栏 / R：清空整页\n")
	sb.WriteString("• 双击重置栏 / U：撤销上一步\n")
	sb.WriteString("\n点数剩余为 0 时整行变绿")

	return common.BoxStyle.Render(sb.String())
}

func renderHelp(m model.Model) string {
	h := m.Help()
	if !m.ShowingHelp() {
		return h.ShortHelpView(m.Keys().ShortHelp())
	}
	usage := RenderUsage(m.Board().Config().LongPressClear)
	return h.FullHelpView(m.Keys().FullHelp()) + "\n\n" + usage
}
