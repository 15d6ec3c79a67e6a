// Package render emits the self-contained interactive HTML document.
// The host side only serializes the completed node mapping; all layout
// math and interaction handling live in the embedded script, so the
// presentation layer can be swapped without touching the scan core.
package render

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"text/template"

	billy "github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/dirscope/dirscope/api"
	"github.com/dirscope/dirscope/internal/config"
)

// Document bundles everything the page template needs: the immutable
// node mapping, the observed size bounds for the legend, and the
// geometry/ramp settings.
type Document struct {
	Nodes    map[string]*api.Node
	MinSize  int64
	MaxSize  int64
	Settings config.Settings
}

// Render writes the complete HTML document. The output references no
// external resources.
func (d *Document) Render(w io.Writer) error {
	legendMin := d.MinSize
	if legendMin == math.MaxInt64 {
		legendMin = 0
	}
	s := d.Settings
	return pageTmpl.Execute(w, pageData{
		NodeWidth:     s.NodeWidth,
		NodeHeight:    s.NodeHeight,
		NodeRadius:    s.NodeRadius,
		VerticalGap:   s.VerticalGap,
		HorizontalGap: s.HorizontalGap,
		LowHex:        s.Ramp.Low.Hex(),
		MidHex:        s.Ramp.Mid.Hex(),
		HighHex:       s.Ramp.High.Hex(),
		LegendMin:     api.FormatSize(legendMin),
		LegendMax:     api.FormatSize(d.MaxSize),
		TreeJSON:      d.treeJSON(),
	})
}

// WriteFile renders into a temporary sibling file and renames it into
// place so a failed write never leaves a truncated document behind.
func (d *Document) WriteFile(fs billy.Filesystem, path string) error {
	tmp := path + ".tmp"
	f, err := fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if err := d.Render(f); err != nil {
		_ = f.Close()
		_ = fs.Remove(tmp)
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func (d *Document) treeJSON() string {
	// A literal "</" inside a directory name would terminate the script
	// element early; "<\/" is equivalent JSON and inert in HTML.
	s := oj.JSON(d.Nodes, &ojg.Options{Sort: true, UseTags: true})
	return strings.ReplaceAll(s, "</", `<\/`)
}

// OutputPath normalizes the requested output location: a relative path
// lands inside the scanned directory and a legacy .svg suffix is
// rewritten to .html.
func OutputPath(dir, out string) string {
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	if strings.HasSuffix(out, ".svg") {
		out = strings.TrimSuffix(out, ".svg") + ".html"
	}
	return out
}

type pageData struct {
	NodeWidth     int
	NodeHeight    int
	NodeRadius    int
	VerticalGap   int
	HorizontalGap int
	LowHex        string
	MidHex        string
	HighHex       string
	LegendMin     string
	LegendMax     string
	TreeJSON      string
}

var pageTmpl = template.Must(template.New("page").Parse(pageSource))

const pageSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Interactive Directory Structure</title>
<style>
  body { margin: 0; padding: 0; background-color: #1a1a1a; overflow: auto; }
  #svg-container { width: 100%; height: 100vh; overflow: auto; }
  svg { display: block; width: 100%; height: auto; }
  .node { cursor: pointer; }
  .node-text { pointer-events: none; }
  .connector { pointer-events: none; }
  .toggle-icon { cursor: pointer; fill: #ffffff; }
  .controls { position: fixed; top: 10px; right: 20px; background: rgba(0,0,0,0.7); padding: 10px; border-radius: 5px; color: white; }
  .zoom-button { background: #444; color: white; border: none; padding: 5px 10px; margin: 0 5px; cursor: pointer; border-radius: 3px; }
  input[type="number"], input[type="text"] { background: #444; color: white; border: none; padding: 5px; border-radius: 3px; }
  label { margin-right: 5px; }
  .legend { margin-top: 10px; }
  .legend-bar { width: 150px; height: 20px; background: linear-gradient(to right, {{.LowHex}}, {{.MidHex}}, {{.HighHex}}); border-radius: 3px; }
  .legend-labels { display: flex; justify-content: space-between; font-size: 12px; margin-top: 2px; }
</style>
</head>
<body>
<div class="controls">
  <button class="zoom-button" id="zoom-in">Zoom In (+)</button>
  <button class="zoom-button" id="zoom-out">Zoom Out (-)</button>
  <button class="zoom-button" id="zoom-reset">Reset Zoom</button>
  <div style="margin-top: 10px;">
    <label>Vertical Gap: </label>
    <input type="number" id="vertical-gap-input" min="45" max="500" step="5" style="width: 60px;">
  </div>
  <div style="margin-top: 5px;">
    <label>Horizontal Gap: </label>
    <input type="number" id="horizontal-gap-input" min="45" max="500" step="5" style="width: 60px;">
  </div>
  <div style="margin-top: 10px;">
    <label>Search: </label>
    <input type="text" id="search-input" placeholder="Enter directory name..." style="width: 150px;">
  </div>
  <div class="legend">
    <div class="legend-bar"></div>
    <div class="legend-labels"><span>Small ({{.LegendMin}})</span><span>Large ({{.LegendMax}})</span></div>
  </div>
</div>
<div id="svg-container">
<svg id="directory-tree" viewBox="0 0 1600 1200" preserveAspectRatio="xMinYMin meet">
<rect width="100%" height="100%" fill="#2A2A2A"/>
<g id="diagram">
<g id="connections"></g>
<g id="nodes"></g>
</g>
</svg>
</div>
<script>
const nodeWidth = {{.NodeWidth}};
const nodeHeight = {{.NodeHeight}};
const nodeRadius = {{.NodeRadius}};
let verticalGap = {{.VerticalGap}};
let horizontalGap = {{.HorizontalGap}};
const treeData = {{.TreeJSON}};
const svg = document.getElementById('directory-tree');
const svgContainer = document.getElementById('svg-container');
const diagram = document.getElementById('diagram');
const nodesGroup = document.getElementById('nodes');
const connectionsGroup = document.getElementById('connections');
const nodeStates = {};
let currentZoom = 0.5;
let zoomIncrement = 0.1;
let rootId = Object.keys(treeData).find(id => !treeData[id].parent);
Object.keys(treeData).forEach(id => {
    nodeStates[id] = { expanded: id === rootId, visible: false };
});
if (rootId) {
    nodeStates[rootId].visible = true;
    treeData[rootId].children.forEach(childId => {
        nodeStates[childId].visible = true;
    });
}
renderTree();
zoomOut();
svg.addEventListener('wheel', handleWheel);
document.getElementById('zoom-in').addEventListener('click', () => {
    zoomIn();
});
document.getElementById('zoom-out').addEventListener('click', () => {
    zoomOut();
});
document.getElementById('zoom-reset').addEventListener('click', () => {
    resetZoom();
});
const verticalGapInput = document.getElementById('vertical-gap-input');
const horizontalGapInput = document.getElementById('horizontal-gap-input');
verticalGapInput.value = verticalGap;
horizontalGapInput.value = horizontalGap;
verticalGapInput.addEventListener('input', (e) => {
    verticalGap = parseInt(e.target.value) || 100;
    renderTree();
});
horizontalGapInput.addEventListener('input', (e) => {
    horizontalGap = parseInt(e.target.value) || 300;
    renderTree();
});
document.getElementById('search-input').addEventListener('input', (e) => {
    const searchTerm = e.target.value.toLowerCase();
    searchNodes(searchTerm);
    renderTree();
});
function zoomIn() {
    currentZoom += zoomIncrement;
    updateZoom();
}
function zoomOut() {
    currentZoom = Math.max(0.1, currentZoom - zoomIncrement);
    updateZoom();
}
function resetZoom() {
    currentZoom = 1;
    updateZoom();
}
function updateZoom() {
    diagram.setAttribute('transform', 'scale(' + currentZoom + ')');
}
function handleWheel(e) {
    const container = document.getElementById('svg-container');
    const scrollSpeed = 50;
    if (e.deltaY < 0) {
        container.scrollTop -= scrollSpeed;
    } else {
        container.scrollTop += scrollSpeed;
    }
}
function updateSVGSize() {
    const nodes = document.querySelectorAll('.node');
    if (nodes.length === 0) return;
    let maxX = 0;
    let maxY = 0;
    nodes.forEach(node => {
        const rect = node.querySelector('rect');
        const x = parseFloat(rect.getAttribute('x')) + nodeWidth;
        const y = parseFloat(rect.getAttribute('y')) + nodeHeight;
        maxX = Math.max(maxX, x);
        maxY = Math.max(maxY, y);
    });
    maxX += 100;
    maxY += 150;
    svg.setAttribute('viewBox', '0 0 ' + maxX + ' ' + maxY);
    svg.setAttribute('width', maxX);
    svg.setAttribute('height', maxY);
}
function renderTree() {
    nodesGroup.innerHTML = '';
    connectionsGroup.innerHTML = '';
    calculateNodePositions();
    renderConnections();
    renderNodes();
    updateSVGSize();
}
function calculateNodePositions() {
    const visibleNodes = [];
    function traverseVisible(nodeId, level = 0, position = 0) {
        const node = treeData[nodeId];
        if (!nodeStates[nodeId].visible) return position;
        node.level = level;
        node.y = position * verticalGap + 45;
        visibleNodes.push(node);
        position++;
        if (nodeStates[nodeId].expanded) {
            for (const childId of node.children) {
                if (nodeStates[childId].visible) {
                    position = traverseVisible(childId, level + 1, position);
                }
            }
        }
        return position;
    }
    if (rootId) {
        traverseVisible(rootId);
    }
    const levelPositions = {};
    const maxLevel = Math.max(...visibleNodes.map(n => n.level), 0);
    levelPositions[0] = 45;
    for (let level = 1; level <= maxLevel; level++) {
        levelPositions[level] = levelPositions[level-1] + nodeWidth + horizontalGap;
    }
    visibleNodes.forEach(node => {
        node.x = levelPositions[node.level];
    });
}
function renderConnections() {
    for (const nodeId in treeData) {
        const node = treeData[nodeId];
        if (!nodeStates[nodeId].visible) continue;
        if (!nodeStates[nodeId].expanded || !node.children.length) continue;
        for (const childId of node.children) {
            if (!nodeStates[childId].visible) continue;
            const child = treeData[childId];
            const startX = node.x + nodeWidth;
            const startY = node.y + (nodeHeight / 2);
            const endX = child.x;
            const endY = child.y + (nodeHeight / 2);
            const controlX1 = startX + (endX - startX) * 0.4;
            const controlX2 = startX + (endX - startX) * 0.6;
            const path = document.createElementNS('http://www.w3.org/2000/svg', 'path');
            path.setAttribute('d', 'M ' + startX + ' ' + startY + ' C ' + controlX1 + ' ' + startY + ', ' + controlX2 + ' ' + endY + ', ' + endX + ' ' + endY);
            path.setAttribute('stroke', '#AAAAAA');
            path.setAttribute('stroke-width', '2');
            path.setAttribute('fill', 'none');
            path.setAttribute('class', 'connector');
            connectionsGroup.appendChild(path);
        }
    }
}
function renderNodes() {
    for (const nodeId in treeData) {
        const node = treeData[nodeId];
        if (!nodeStates[nodeId].visible) continue;
        const nodeGroup = document.createElementNS('http://www.w3.org/2000/svg', 'g');
        nodeGroup.setAttribute('class', 'node');
        nodeGroup.setAttribute('data-id', nodeId);
        nodeGroup.addEventListener('click', (e) => toggleNode(nodeId, e));
        const rect = document.createElementNS('http://www.w3.org/2000/svg', 'rect');
        rect.setAttribute('x', node.x);
        rect.setAttribute('y', node.y);
        rect.setAttribute('width', nodeWidth);
        rect.setAttribute('height', nodeHeight);
        rect.setAttribute('rx', nodeRadius);
        rect.setAttribute('ry', nodeRadius);
        rect.setAttribute('fill', node.highlight ? '#FF4500' : node.color);
        nodeGroup.appendChild(rect);
        const circle = document.createElementNS('http://www.w3.org/2000/svg', 'circle');
        circle.setAttribute('cx', node.x + 15);
        circle.setAttribute('cy', node.y + nodeHeight / 2);
        circle.setAttribute('r', '5');
        circle.setAttribute('fill', '#FFD700');
        nodeGroup.appendChild(circle);
        const textName = document.createElementNS('http://www.w3.org/2000/svg', 'text');
        textName.setAttribute('x', node.x + 30);
        textName.setAttribute('y', node.y + nodeHeight / 2 - 5);
        textName.setAttribute('font-family', 'Arial');
        textName.setAttribute('font-size', '14px');
        textName.setAttribute('fill', '#FFFFFF');
        textName.setAttribute('class', 'node-text');
        textName.textContent = node.name;
        nodeGroup.appendChild(textName);
        const textSize = document.createElementNS('http://www.w3.org/2000/svg', 'text');
        textSize.setAttribute('x', node.x + 30);
        textSize.setAttribute('y', node.y + nodeHeight / 2 + 15);
        textSize.setAttribute('font-family', 'Arial');
        textSize.setAttribute('font-size', '12px');
        textSize.setAttribute('fill', '#FFFFFF');
        textSize.setAttribute('class', 'node-text');
        textSize.textContent = node.formatted_size;
        nodeGroup.appendChild(textSize);
        if (node.children.length > 0) {
            const toggleIcon = document.createElementNS('http://www.w3.org/2000/svg', 'text');
            toggleIcon.setAttribute('x', node.x + nodeWidth - 20);
            toggleIcon.setAttribute('y', node.y + nodeHeight / 2 + 5);
            toggleIcon.setAttribute('font-family', 'Arial');
            toggleIcon.setAttribute('font-size', '18px');
            toggleIcon.setAttribute('fill', '#FFFFFF');
            toggleIcon.setAttribute('class', 'toggle-icon');
            toggleIcon.textContent = nodeStates[nodeId].expanded ? '−' : '+';
            toggleIcon.addEventListener('click', (e) => {
                toggleNode(nodeId, e);
                e.stopPropagation();
            });
            nodeGroup.appendChild(toggleIcon);
        }
        nodesGroup.appendChild(nodeGroup);
    }
}
function collapseSubtree(nodeId) {
    const node = treeData[nodeId];
    nodeStates[nodeId].expanded = false;
    node.children.forEach(childId => {
        nodeStates[childId].visible = false;
        collapseSubtree(childId);
    });
}
function toggleNode(nodeId, event) {
    nodeStates[nodeId].expanded = !nodeStates[nodeId].expanded;
    if (!nodeStates[nodeId].expanded) {
        collapseSubtree(nodeId);
    } else {
        treeData[nodeId].children.forEach(childId => {
            nodeStates[childId].visible = true;
        });
    }
    renderTree();
}
function searchNodes(searchTerm) {
    Object.keys(treeData).forEach(id => {
        treeData[id].highlight = false;
        nodeStates[id].visible = false;
        nodeStates[id].expanded = false;
    });

    if (searchTerm.trim() === '') {
        if (rootId) {
            nodeStates[rootId].expanded = true;
            nodeStates[rootId].visible = true;
            treeData[rootId].children.forEach(childId => {
                nodeStates[childId].visible = true;
            });
        }
        return;
    }

    Object.keys(treeData).forEach(id => {
        const node = treeData[id];
        if (node.name.toLowerCase().includes(searchTerm)) {
            node.highlight = true;
            nodeStates[id].expanded = true;
            nodeStates[id].visible = true;
            let parentId = node.parent;
            while (parentId) {
                nodeStates[parentId].expanded = true;
                nodeStates[parentId].visible = true;
                parentId = treeData[parentId].parent;
            }
        } else {
            node.highlight = false;
        }
    });
}
</script>
</body>
</html>
`
